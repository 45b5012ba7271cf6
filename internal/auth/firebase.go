package auth

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// GoogleCertsURL publishes the x509 certificates that sign Firebase ID tokens.
const GoogleCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// MinKeyTTL is how long a fetched certificate set is trusted when the
// response carries no usable max-age.
const MinKeyTTL = 5 * time.Minute

var maxAgeRe = regexp.MustCompile(`max-age=(\d+)`)

// FirebaseVerifier checks Firebase Authentication ID tokens for one project.
type FirebaseVerifier struct {
	projectID  string
	certsURL   string
	httpClient *http.Client
	now        func() time.Time

	fetches singleflight.Group

	mu      sync.Mutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

type FirebaseOption func(*FirebaseVerifier)

// WithCertsURL overrides where signing certificates are fetched from.
func WithCertsURL(url string) FirebaseOption {
	return func(v *FirebaseVerifier) { v.certsURL = url }
}

func WithHTTPClient(c *http.Client) FirebaseOption {
	return func(v *FirebaseVerifier) { v.httpClient = c }
}

func NewFirebaseVerifier(projectID string, opts ...FirebaseOption) *FirebaseVerifier {
	v := &FirebaseVerifier{
		projectID:  projectID,
		certsURL:   GoogleCertsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

func (v *FirebaseVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("kid header is missing")
		}
		return v.key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer("https://securetoken.google.com/"+v.projectID),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: subject is missing", ErrInvalidToken)
	}
	if claims.Email == "" {
		return "", fmt.Errorf("%w: email claim is missing", ErrInvalidToken)
	}
	return claims.Email, nil
}

// key returns the public key for kid from the cached certificate set. The set
// is only refetched once it is past its max-age; an unknown kid against a
// fresh set is rejected without going back to Google.
func (v *FirebaseVerifier) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, fresh := v.cached()
	if !fresh {
		var err error
		if keys, err = v.refresh(ctx); err != nil {
			return nil, err
		}
	}
	k, ok := keys[kid]
	if !ok {
		return nil, fmt.Errorf("no signing key for kid %q", kid)
	}
	return k, nil
}

func (v *FirebaseVerifier) cached() (map[string]*rsa.PublicKey, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.keys, v.keys != nil && v.now().Before(v.expires)
}

// refresh fetches the certificate set. Concurrent callers share one fetch,
// which runs outside v.mu and is not tied to any single request's lifetime.
func (v *FirebaseVerifier) refresh(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	res, err, _ := v.fetches.Do("certs", func() (interface{}, error) {
		// A fetch that finished just before this one started already refreshed the set
		if keys, fresh := v.cached(); fresh {
			return keys, nil
		}
		keys, ttl, err := v.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		v.mu.Lock()
		v.keys = keys
		v.expires = v.now().Add(ttl)
		v.mu.Unlock()
		return keys, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(map[string]*rsa.PublicKey), nil
}

func (v *FirebaseVerifier) fetch(ctx context.Context) (map[string]*rsa.PublicKey, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch signing certs: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("fetch signing certs: status %d", resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return nil, 0, fmt.Errorf("decode signing certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, pem := range certs {
		k, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
		if err != nil {
			log.Warn().Err(err).Str("kid", kid).Msg("skipping unparsable signing cert")
			continue
		}
		keys[kid] = k
	}
	return keys, keyTTL(resp.Header.Get("Cache-Control")), nil
}

// keyTTL is the response's max-age, never less than MinKeyTTL.
func keyTTL(cacheControl string) time.Duration {
	m := maxAgeRe.FindStringSubmatch(cacheControl)
	if m == nil {
		return MinKeyTTL
	}
	secs, err := strconv.Atoi(m[1])
	if err != nil {
		return MinKeyTTL
	}
	if ttl := time.Duration(secs) * time.Second; ttl > MinKeyTTL {
		return ttl
	}
	return MinKeyTTL
}
