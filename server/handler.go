// Package server exposes the cipher and statistics core over a small JSON
// HTTP API. It treats the core packages as an opaque text-transform library:
// key material arrives with each request, ciphers are built per call, and no
// state survives between requests.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdiallo/go-classical-ciphers/analysis"
	"github.com/bdiallo/go-classical-ciphers/classical"
	"github.com/bdiallo/go-classical-ciphers/modmath"
)

// Handler carries the HTTP handlers for the cipher API.
type Handler struct{}

// NewHandler returns a ready-to-register Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the API under /api/v1 on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.POST("/analyze", h.Analyze)

		cipher := api.Group("/cipher")
		{
			cipher.POST("/:name/encrypt", h.Encrypt)
			cipher.POST("/:name/decrypt", h.Decrypt)
		}
	}
}

// transformRequest is the body of the encrypt/decrypt endpoints. Exactly one
// cipher's key material is expected, selected by the :name route parameter:
//
//	caesar:   {"text": "...", "shift": 3}
//	affine:   {"text": "...", "a": 5, "b": 8}
//	vigenere: {"text": "...", "key": "LEMON"}
//	hill:     {"text": "...", "matrix": [[11,8],[3,7]]}
type transformRequest struct {
	Text   string     `json:"text"`
	Shift  *int       `json:"shift,omitempty"`
	A      *int       `json:"a,omitempty"`
	B      *int       `json:"b,omitempty"`
	Key    *string    `json:"key,omitempty"`
	Matrix *[2][2]int `json:"matrix,omitempty"`
}

// transformResponse is the envelope returned by the encrypt/decrypt
// endpoints.
type transformResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

// analyzeRequest is the body of the analyze endpoint.
type analyzeRequest struct {
	Text string `json:"text"`
}

// analyzeResponse carries the three statistical measures plus the alphabetic
// count they were computed over.
type analyzeResponse struct {
	Success            bool    `json:"success"`
	Entropy            float64 `json:"entropy"`
	Redundancy         float64 `json:"redundancy"`
	IndexOfCoincidence float64 `json:"index_of_coincidence"`
	Letters            int     `json:"letters"`
	Message            string  `json:"message,omitempty"`
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "classical cipher API is running",
	})
}

// Encrypt builds the named cipher from the request's key material and
// returns the encrypted text.
func (h *Handler) Encrypt(c *gin.Context) {
	h.transform(c, func(cipher classical.Cipher, text string) (string, error) {
		return cipher.Encrypt(text)
	})
}

// Decrypt builds the named cipher from the request's key material and
// returns the decrypted text.
func (h *Handler) Decrypt(c *gin.Context) {
	h.transform(c, func(cipher classical.Cipher, text string) (string, error) {
		return cipher.Decrypt(text)
	})
}

// Analyze computes entropy, redundancy, and index of coincidence for the
// submitted text.
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, analyzeResponse{
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}
	_, letters := analysis.Frequencies(req.Text)
	c.JSON(http.StatusOK, analyzeResponse{
		Success:            true,
		Entropy:            analysis.Entropy(req.Text),
		Redundancy:         analysis.Redundancy(req.Text),
		IndexOfCoincidence: analysis.IndexOfCoincidence(req.Text),
		Letters:            letters,
	})
}

// transform is the shared body of Encrypt and Decrypt.
func (h *Handler) transform(c *gin.Context, apply func(classical.Cipher, string) (string, error)) {
	var req transformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, transformResponse{
			Message: fmt.Sprintf("invalid request body: %v", err),
		})
		return
	}

	cipher, err := buildCipher(classical.CipherName(c.Param("name")), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, transformResponse{Message: err.Error()})
		return
	}

	result, err := apply(cipher, req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, transformResponse{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, transformResponse{Success: true, Result: result})
}

// buildCipher assembles a cipher from per-request key material. Validation
// is delegated to the classical constructors so that the API reports the
// same errors the library does.
func buildCipher(name classical.CipherName, req transformRequest) (classical.Cipher, error) {
	switch name {
	case classical.NameCaesar:
		if req.Shift == nil {
			return nil, fmt.Errorf("caesar requires a %q field", "shift")
		}
		return classical.NewCaesar(*req.Shift), nil

	case classical.NameAffine:
		if req.A == nil {
			return nil, fmt.Errorf("affine requires an %q field", "a")
		}
		b := 0
		if req.B != nil {
			b = *req.B
		}
		return classical.NewAffine(*req.A, b)

	case classical.NameVigenere:
		if req.Key == nil {
			return nil, fmt.Errorf("vigenere requires a %q field", "key")
		}
		return classical.NewVigenere(*req.Key)

	case classical.NameHill:
		if req.Matrix == nil {
			return nil, fmt.Errorf("hill requires a %q field", "matrix")
		}
		m := *req.Matrix
		return classical.NewHill(modmath.Matrix2x2{
			A: m[0][0], B: m[0][1],
			C: m[1][0], D: m[1][1],
		})

	default:
		return nil, fmt.Errorf("%w: %q", classical.ErrCipherNotFound, name)
	}
}
