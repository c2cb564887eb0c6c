package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// VerifySignature checks a gateway signature header of the form
// "t=<unix>,v1=<hmac-hex>[,v1=<hmac-hex>...]" against the raw body. The
// signed payload is "<t>.<body>". Timestamps outside the tolerance window
// are rejected to stop replayed deliveries.
func VerifySignature(secret, sigHeader string, body []byte, tolerance time.Duration, now time.Time) error {
	var timestamp int64 = -1
	var candidates []string

	for _, part := range strings.Split(sigHeader, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: bad timestamp", ErrInvalidSignature)
			}
			timestamp = ts
		case "v1":
			candidates = append(candidates, v)
		}
	}

	if timestamp < 0 || len(candidates) == 0 {
		return fmt.Errorf("%w: malformed header", ErrInvalidSignature)
	}

	age := now.Unix() - timestamp
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second > tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, candidate := range candidates {
		if hmac.Equal([]byte(expected), []byte(candidate)) {
			return nil
		}
	}

	return ErrInvalidSignature
}

// SignPayload produces a signature header for the given body, matching what
// VerifySignature accepts. Used by tests and the local webhook replayer.
func SignPayload(secret string, body []byte, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(body)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}
