// Package auth verifies caller identity from signed bearer tokens using the
// identity provider's published key set.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"stylist/pkg/domain"
	"stylist/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
)

// Options defines the configuration parameters for the token verifier.
type Options struct {
	// IssuerURL is the expected token issuer. Tokens from any other issuer
	// are rejected.
	IssuerURL string
	// JWKSURL is the endpoint publishing the issuer's signing keys. When
	// empty it is derived from IssuerURL.
	JWKSURL string
	// CacheTTL bounds how long fetched signing keys are trusted before a
	// refresh. Zero selects a default of 15 minutes.
	CacheTTL time.Duration
	// HTTPClient performs key-set fetches. When nil a client with a 30s
	// timeout is used.
	HTTPClient *http.Client
}

// Verifier validates bearer tokens and extracts the caller identity. Signing
// keys are cached between requests and refreshed lazily when an unknown key
// id is seen or the cache expires. It is safe for concurrent use.
type Verifier struct {
	issuer string
	keys   *keyCache
}

// New creates a Verifier. It does not contact the key-set endpoint; keys are
// fetched on first use so the service can start while the issuer is down.
func New(options Options) (*Verifier, error) {
	if options.IssuerURL == "" {
		return nil, serrors.With(serrors.ErrConfig, "issuer url is required")
	}

	jwksURL := options.JWKSURL
	if jwksURL == "" {
		jwksURL = strings.TrimSuffix(options.IssuerURL, "/") + "/.well-known/jwks.json"
	}

	ttl := options.CacheTTL
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Verifier{
		issuer: options.IssuerURL,
		keys:   newKeyCache(jwksURL, httpClient, ttl),
	}, nil
}

// Verify validates the given bearer token and returns the user identity it
// asserts. The token must be RSA-signed by a key from the issuer's key set,
// unexpired and carry the expected issuer and a subject.
func (v *Verifier) Verify(ctx context.Context, tokenStr string) (domain.UserID, error) {
	if tokenStr == "" {
		return "", serrors.With(serrors.ErrInvalidCredential, "credential is missing")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, serrors.With(serrors.ErrInvalidCredential,
				"unexpected signing method: %v", token.Header["alg"])
		}

		kid, ok := token.Header["kid"].(string)
		if !ok || kid == "" {
			return nil, serrors.With(serrors.ErrInvalidCredential, "token has no kid header")
		}

		key, err := v.keys.get(ctx, kid)
		if err != nil {
			return nil, fmt.Errorf("could not get key for kid %s: %w", kid, err)
		}

		return key, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		// keep upstream failures distinguishable from bad credentials
		if serrors.KindOf(err) == serrors.ErrUpstream {
			return "", err
		}

		return "", serrors.Wrap(serrors.ErrInvalidCredential, err, "could not verify token")
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", serrors.With(serrors.ErrInvalidCredential, "token has no subject")
	}

	return domain.UserID(sub), nil
}

// keyCache holds the issuer's RSA public keys, keyed by kid, with a TTL.
type keyCache struct {
	url        string
	httpClient *http.Client
	ttl        time.Duration

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	fetched time.Time
}

func newKeyCache(url string, httpClient *http.Client, ttl time.Duration) *keyCache {
	return &keyCache{
		url:        url,
		httpClient: httpClient,
		ttl:        ttl,
		keys:       make(map[string]*rsa.PublicKey),
	}
}

// get returns the key for kid, refreshing the cache when the kid is unknown
// or the cache has expired. A stale cached key is still served when the
// refresh fails, so issuer downtime does not immediately break verification.
func (c *keyCache) get(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, ok := c.keys[kid]
	expired := time.Since(c.fetched) > c.ttl
	c.mu.RUnlock()

	if ok && !expired {
		return key, nil
	}

	keys, err := c.refresh(ctx, kid)
	if err != nil {
		if ok {
			return key, nil
		}

		return nil, err
	}

	key, ok = keys[kid]
	if !ok {
		return nil, serrors.With(serrors.ErrInvalidCredential, "signing key %s not found", kid)
	}

	return key, nil
}

// refresh fetches the key set and replaces the cache. An unknown kid always
// forces a fetch so rotated keys are picked up before the TTL expires. The
// fetch runs without the lock, so lookups of already cached keys never block
// behind it; concurrent misses may fetch the key set twice and the last
// write wins.
func (c *keyCache) refresh(ctx context.Context, kid string) (map[string]*rsa.PublicKey, error) {
	// another goroutine might have refreshed already
	c.mu.RLock()
	if time.Since(c.fetched) < c.ttl {
		if _, ok := c.keys[kid]; ok {
			keys := c.keys
			c.mu.RUnlock()

			return keys, nil
		}
	}
	c.mu.RUnlock()

	keys, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.keys = keys
	c.fetched = time.Now()
	c.mu.Unlock()

	return keys, nil
}

// fetch retrieves and decodes the issuer's key set.
func (c *keyCache) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not fetch key set")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, serrors.With(serrors.ErrUpstream, "key set fetch failed with status %d", resp.StatusCode)
	}

	var jwks struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not decode key set")
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, key := range jwks.Keys {
		// only RSA keys are usable for the accepted signing methods
		if key.Kty != "RSA" {
			continue
		}

		nBytes, err := base64URLDecode(key.N)
		if err != nil {
			continue
		}
		eBytes, err := base64URLDecode(key.E)
		if err != nil {
			continue
		}

		e := 0
		for _, b := range eBytes {
			e = e<<8 + int(b)
		}

		keys[key.Kid] = &rsa.PublicKey{
			N: new(big.Int).SetBytes(nBytes),
			E: e,
		}
	}

	return keys, nil
}

// base64URLDecode decodes a base64url encoded string, tolerating missing
// padding.
func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}

	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("could not decode base64url: %w", err)
	}

	return b, nil
}
