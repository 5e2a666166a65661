package storage_test

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeIPFS emulates the pinning APIs of both backends plus a public gateway
type fakeIPFS struct {
	mu      sync.Mutex
	content map[string][]byte
	token   string
	status  int
	server  *httptest.Server
	uploads int
}

func newFakeIPFS(t *testing.T, token string) *fakeIPFS {
	t.Helper()

	f := &fakeIPFS{content: map[string][]byte{}, token: token}

	mux := http.NewServeMux()
	mux.HandleFunc("/pinning/pinFileToIPFS", f.authorized(f.pinFile))
	mux.HandleFunc("/pinning/pinJSONToIPFS", f.authorized(f.pinJSON))
	mux.HandleFunc("/data/testAuthentication", f.authorized(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Congratulations! You are communicating with the Pinata API!"}`))
	}))
	mux.HandleFunc("/upload", f.authorized(f.upload))
	mux.HandleFunc("/user/uploads", f.authorized(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	mux.HandleFunc("/ipfs/", f.gateway)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeIPFS) URL() string {
	return f.server.URL
}

// failWith makes every API call answer status
func (f *fakeIPFS) failWith(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

func (f *fakeIPFS) store(data []byte) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.uploads++
	sum := sha256.Sum256(append(data, byte(f.uploads)))
	cid := "bafy" + hex.EncodeToString(sum[:16])
	f.content[cid] = append([]byte(nil), data...)
	return cid
}

func (f *fakeIPFS) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		status := f.status
		f.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (f *fakeIPFS) pinFile(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, _ := io.ReadAll(file)
	_ = json.NewEncoder(w).Encode(map[string]any{"IpfsHash": f.store(data), "PinSize": len(data)})
}

func (f *fakeIPFS) pinJSON(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PinataContent json.RawMessage `json:"pinataContent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"IpfsHash": f.store(req.PinataContent)})
}

func (f *fakeIPFS) upload(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	_ = json.NewEncoder(w).Encode(map[string]any{"cid": f.store(data)})
}

func (f *fakeIPFS) gateway(w http.ResponseWriter, r *http.Request) {
	cid := strings.TrimPrefix(r.URL.Path, "/ipfs/")

	f.mu.Lock()
	data, ok := f.content[cid]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if json.Valid(data) {
		w.Header().Set("Content-Type", "application/json")
	}
	_, _ = w.Write(data)
}
