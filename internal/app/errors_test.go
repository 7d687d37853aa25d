package app

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsTransportError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsTransportError(stdErr))

	tErr := &TransportError{Path: "_apis/projects", StatusCode: http.StatusUnauthorized}
	assert.True(t, IsTransportError(tErr))
	assert.Equal(t, "request _apis/projects: got http status 401", tErr.Error())

	wrapperErr := fmt.Errorf("wrapping message: %w", tErr)
	assert.True(t, IsTransportError(wrapperErr))

	pkgWrapperErr := pkgerrors.Wrap(tErr, "wrapping message")
	assert.True(t, IsTransportError(pkgWrapperErr))
	assert.False(t, IsMalformedResponseError(pkgWrapperErr))
}

func TestTransportErrorUnwrap(t *testing.T) {
	netErr := errors.New("connection refused")
	tErr := &TransportError{Path: "_apis/projects", Err: netErr}

	assert.True(t, errors.Is(tErr, netErr))
	assert.Equal(t, "request _apis/projects: connection refused", tErr.Error())
}

func TestIsMalformedResponseError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsMalformedResponseError(stdErr))

	mErr := &MalformedResponseError{Path: "_apis/projects", Field: "value", Reason: "is missing"}
	assert.True(t, IsMalformedResponseError(mErr))
	assert.Equal(t, `malformed response from _apis/projects: field "value" is missing`, mErr.Error())

	wrapperErr := fmt.Errorf("wrapping message: %w", mErr)
	assert.True(t, IsMalformedResponseError(wrapperErr))
	assert.False(t, IsTransportError(wrapperErr))
}
