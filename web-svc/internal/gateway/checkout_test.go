package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"reddys-kitchen/web-svc/internal/app"
	"reddys-kitchen/web-svc/internal/checkout"
)

func TestCheckoutFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantNotice string
	}{
		{name: "empty cart", err: checkout.ErrEmptyCart, wantStatus: http.StatusBadRequest, wantNotice: app.NoticeEmptyCart},
		{name: "store rejected", err: fmt.Errorf("%w: unexpected status 500", checkout.ErrSubmitFailed), wantStatus: http.StatusBadGateway, wantNotice: app.NoticeSubmitFailed},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantNotice: app.NoticeSubmitFailed},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			status, notice := checkoutFailure(testCase.err)
			assert.Equal(t, testCase.wantStatus, status)
			assert.Equal(t, testCase.wantNotice, notice)
		})
	}
}
