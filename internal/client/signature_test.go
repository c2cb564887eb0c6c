package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

func TestVerifySignature_Valid(t *testing.T) {
	now := time.Now()
	body := []byte(`{"id":"evt_1"}`)
	header := SignPayload(testSecret, body, now)

	err := VerifySignature(testSecret, header, body, 5*time.Minute, now)

	assert.NoError(t, err)
}

func TestVerifySignature_TamperedBody(t *testing.T) {
	now := time.Now()
	original := []byte(`{"id":"evt_1","amount":5000}`)
	header := SignPayload(testSecret, original, now)

	tampered := []byte(`{"id":"evt_1","amount":1}`)
	err := VerifySignature(testSecret, header, tampered, 5*time.Minute, now)

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	now := time.Now()
	body := []byte(`{"id":"evt_1"}`)
	header := SignPayload("whsec_other", body, now)

	err := VerifySignature(testSecret, header, body, 5*time.Minute, now)

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignature_StaleTimestamp(t *testing.T) {
	signedAt := time.Now().Add(-10 * time.Minute)
	body := []byte(`{"id":"evt_1"}`)
	header := SignPayload(testSecret, body, signedAt)

	err := VerifySignature(testSecret, header, body, 5*time.Minute, time.Now())

	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignature_MalformedHeader(t *testing.T) {
	body := []byte(`{"id":"evt_1"}`)

	for _, header := range []string{"", "garbage", "t=abc,v1=00", "v1=00", "t=123"} {
		err := VerifySignature(testSecret, header, body, 5*time.Minute, time.Now())
		assert.ErrorIs(t, err, ErrInvalidSignature, "header %q", header)
	}
}

func TestVerifySignature_AcceptsAnyValidCandidate(t *testing.T) {
	// Gateways send multiple v1 entries during secret rotation.
	now := time.Now()
	body := []byte(`{"id":"evt_1"}`)
	valid := SignPayload(testSecret, body, now)
	header := valid + ",v1=deadbeef"

	err := VerifySignature(testSecret, header, body, 5*time.Minute, now)

	require.NoError(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$50.00", FormatAmount(5000, "usd"))
	assert.Equal(t, "$0.99", FormatAmount(99, "usd"))
	assert.Equal(t, "EUR 12.05", FormatAmount(1205, "eur"))
}
