//go:build ignore

// mock-oauth2-server.go - Simple OAuth2 mock server for local testing
//
// Usage:
//   go run scripts/mock-oauth2-server.go
//
// Issues RS256-signed JWTs and serves the matching JWKS, so the API server
// can run with auth enabled locally:
//
//   auth:
//     enabled: true
//     jwks_url: http://localhost:8088/.well-known/jwks.json
//     issuer: http://localhost:8088
//
// The signing key is generated at startup (not for production use).

package main

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chainsafe/kyc-middleware/pkg/auth"
)

const (
	port = 8088
	kid  = "local-dev-key"
)

var signingKey *rsa.PrivateKey

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func main() {
	var err error
	signingKey, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("Failed to generate signing key: %v", err)
	}

	http.HandleFunc("/oauth/token", handleToken)
	http.HandleFunc("/.well-known/jwks.json", handleJWKS)
	http.HandleFunc("/health", handleHealth)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Mock OAuth2 server starting on http://localhost%s", addr)
	log.Printf("POST /oauth/token            - Returns JWT signed with RS256")
	log.Printf("GET  /.well-known/jwks.json  - JWKS with the signing key")
	log.Printf("GET  /health                 - Health check")
	log.Fatal(http.ListenAndServe(addr, nil))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func handleJWKS(w http.ResponseWriter, r *http.Request) {
	jwks := auth.JWKS{Keys: []auth.JWK{{
		Kid: kid,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(signingKey.PublicKey.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(signingKey.PublicKey.E)).Bytes()),
	}}}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(jwks)
}

func handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse form data or JSON body (client_credentials grant)
	contentType := r.Header.Get("Content-Type")
	var clientID, audience string

	if strings.Contains(contentType, "application/json") {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Failed to parse JSON body", http.StatusBadRequest)
			return
		}
		clientID = body["client_id"]
		audience = body["audience"]
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Failed to parse form", http.StatusBadRequest)
			return
		}
		clientID = r.FormValue("client_id")
		audience = r.FormValue("audience")
	}

	log.Printf("Token request: client_id=%s, audience=%s", clientID, audience)

	// The client_id becomes the JWT subject
	userID := clientID
	if userID == "" {
		userID = "local-user"
	}

	token, err := generateSignedJWT(userID, audience)
	if err != nil {
		http.Error(w, "Failed to sign token", http.StatusInternalServerError)
		return
	}

	resp := tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   86400, // 24 hours
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)

	log.Printf("Issued token for user_id=%s (sub claim)", userID)
}

func generateSignedJWT(userID, audience string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": fmt.Sprintf("http://localhost:%d", port),
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}
	if audience != "" {
		claims["aud"] = audience
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	return token.SignedString(signingKey)
}
