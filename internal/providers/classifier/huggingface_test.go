package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHuggingFaceClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/distilbert-base-uncased-finetuned-sst-2-english" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("authorization = %q", got)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["inputs"] != "me gusta" {
			t.Fatalf("inputs = %q", body["inputs"])
		}
		w.Write([]byte(`[[{"label":"POSITIVE","score":0.9987},{"label":"NEGATIVE","score":0.0013}]]`))
	}))
	defer srv.Close()

	h := NewHuggingFace(Config{APIBase: srv.URL, APIKey: "test-key"})

	res, err := h.Classify(context.Background(), "me gusta")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Label != "POSITIVE" || res.Score != 0.9987 {
		t.Fatalf("result = %+v", res)
	}
	if res.Model != "Hugging Face - distilbert-finetuned-sst-2" {
		t.Fatalf("model label = %q", res.Model)
	}
}

func TestHuggingFaceClassifyFlatPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"label":"NEGATIVE","score":0.6}]`))
	}))
	defer srv.Close()

	h := NewHuggingFace(Config{APIBase: srv.URL})
	res, err := h.Classify(context.Background(), "x")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.Label != "NEGATIVE" || res.Score != 0.6 {
		t.Fatalf("result = %+v", res)
	}
}

func TestHuggingFaceClassifyUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model loading"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	h := NewHuggingFace(Config{APIBase: srv.URL})
	if _, err := h.Classify(context.Background(), "x"); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}
