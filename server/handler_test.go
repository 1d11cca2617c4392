package server_test

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bdiallo/go-classical-ciphers/server"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	server.NewHandler().RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeTransform(t *testing.T, w *httptest.ResponseRecorder) (success bool, result, message string) {
	t.Helper()
	var resp struct {
		Success bool   `json:"success"`
		Result  string `json:"result"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp.Success, resp.Result, resp.Message
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestEncrypt_EachCipher(t *testing.T) {
	shift, a, b, key := 3, 5, 8, "LEMON"
	tests := []struct {
		name string
		path string
		body map[string]any
		want string
	}{
		{
			"caesar demo vector",
			"/api/v1/cipher/caesar/encrypt",
			map[string]any{"text": "BOUBACAR", "shift": shift},
			"ERXEDFDU",
		},
		{
			"vigenere classic vector",
			"/api/v1/cipher/vigenere/encrypt",
			map[string]any{"text": "ATTACKATDAWN", "key": key},
			"LXFOPVEFRNHR",
		},
		{
			"hill textbook key",
			"/api/v1/cipher/hill/encrypt",
			map[string]any{"text": "BONJOURLEMONDE", "matrix": [2][2]int{{11, 8}, {3, 7}}},
			"TXHYCAPYKSYDNL",
		},
		{
			"affine single letter",
			"/api/v1/cipher/affine/encrypt",
			map[string]any{"text": "A", "a": a, "b": b},
			"I",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, newTestRouter(), tt.path, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			success, result, message := decodeTransform(t, w)
			if !success {
				t.Fatalf("success = false, message = %q", message)
			}
			if result != tt.want {
				t.Fatalf("result = %q, want %q", result, tt.want)
			}
		})
	}
}

func TestDecrypt_RoundTripThroughAPI(t *testing.T) {
	r := newTestRouter()
	body := map[string]any{"text": "CRYPTOGRAPHIE", "a": 5, "b": 8}

	w := postJSON(t, r, "/api/v1/cipher/affine/encrypt", body)
	_, ciphertext, _ := decodeTransform(t, w)

	body["text"] = ciphertext
	w = postJSON(t, r, "/api/v1/cipher/affine/decrypt", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	_, plaintext, _ := decodeTransform(t, w)
	if plaintext != "CRYPTOGRAPHIE" {
		t.Fatalf("round trip = %q, want CRYPTOGRAPHIE", plaintext)
	}
}

func TestTransform_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body map[string]any
	}{
		{"unknown cipher", "/api/v1/cipher/rot47/encrypt", map[string]any{"text": "X", "shift": 1}},
		{"caesar missing shift", "/api/v1/cipher/caesar/encrypt", map[string]any{"text": "X"}},
		{"affine missing a", "/api/v1/cipher/affine/encrypt", map[string]any{"text": "X", "b": 8}},
		{"affine non-invertible a", "/api/v1/cipher/affine/encrypt", map[string]any{"text": "X", "a": 4, "b": 8}},
		{"vigenere missing key", "/api/v1/cipher/vigenere/encrypt", map[string]any{"text": "X"}},
		{"vigenere letterless key", "/api/v1/cipher/vigenere/encrypt", map[string]any{"text": "X", "key": "123"}},
		{"hill missing matrix", "/api/v1/cipher/hill/encrypt", map[string]any{"text": "XY"}},
		{"hill singular matrix", "/api/v1/cipher/hill/encrypt", map[string]any{"text": "XY", "matrix": [2][2]int{{2, 4}, {6, 8}}}},
		{"hill odd ciphertext", "/api/v1/cipher/hill/decrypt", map[string]any{"text": "ABC", "matrix": [2][2]int{{11, 8}, {3, 7}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, newTestRouter(), tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", w.Code, w.Body.String())
			}
			success, _, message := decodeTransform(t, w)
			if success {
				t.Fatal("success = true on a bad request")
			}
			if message == "" {
				t.Fatal("empty error message")
			}
		})
	}
}

func TestTransform_MalformedJSON(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cipher/caesar/encrypt",
		bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAnalyze(t *testing.T) {
	w := postJSON(t, newTestRouter(), "/api/v1/analyze", map[string]any{"text": "ABBA"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success            bool    `json:"success"`
		Entropy            float64 `json:"entropy"`
		Redundancy         float64 `json:"redundancy"`
		IndexOfCoincidence float64 `json:"index_of_coincidence"`
		Letters            int     `json:"letters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Letters != 4 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if math.Abs(resp.Entropy-1.0) > 1e-9 {
		t.Fatalf("entropy = %v, want 1.0", resp.Entropy)
	}
	if math.Abs(resp.IndexOfCoincidence-1.0/3.0) > 1e-9 {
		t.Fatalf("ic = %v, want 1/3", resp.IndexOfCoincidence)
	}
}

func TestAnalyze_NoLetters(t *testing.T) {
	w := postJSON(t, newTestRouter(), "/api/v1/analyze", map[string]any{"text": "123 456"})
	var resp struct {
		Entropy            float64 `json:"entropy"`
		IndexOfCoincidence float64 `json:"index_of_coincidence"`
		Letters            int     `json:"letters"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Letters != 0 || resp.Entropy != 0 || resp.IndexOfCoincidence != 0 {
		t.Fatalf("letterless text should zero every measure: %+v", resp)
	}
}
