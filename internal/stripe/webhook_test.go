package stripe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	now := time.Now()

	tests := []struct {
		name        string
		header      func() string
		expectedErr error
	}{
		{
			name: "valid signature",
			header: func() string {
				return SignPayload(payload, secret, now)
			},
		},
		{
			name: "wrong secret",
			header: func() string {
				return SignPayload(payload, "whsec_other", now)
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "tampered payload",
			header: func() string {
				return SignPayload([]byte(`{"id":"evt_2"}`), secret, now)
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "stale timestamp",
			header: func() string {
				return SignPayload(payload, secret, now.Add(-time.Hour))
			},
			expectedErr: ErrStaleTimestamp,
		},
		{
			name: "garbage header",
			header: func() string {
				return "not-a-signature"
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name: "missing v1 entry",
			header: func() string {
				return "t=12345"
			},
			expectedErr: ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifySignature(payload, tt.header(), secret, now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "amount_total": 2500, "metadata": {"transaction_id": "42"}}}
	}`)

	event, err := ParseEvent(payload)
	assert.NoError(t, err)
	assert.Equal(t, EventCheckoutCompleted, event.Type)
	assert.Equal(t, "cs_1", event.Data.Object.ID)
	assert.Equal(t, "42", event.Data.Object.Metadata["transaction_id"])

	_, err = ParseEvent([]byte("{"))
	assert.Error(t, err)
}
