package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/sycs/chat/server/store/types"
)

func TestDecodeStoreError(t *testing.T) {
	ts := types.TimeNow()

	testCases := []struct {
		err  error
		code int
	}{
		{nil, http.StatusOK},
		{types.ErrMalformed, http.StatusBadRequest},
		{types.ErrFailed, http.StatusUnauthorized},
		{types.ErrExpired, http.StatusUnauthorized},
		{types.ErrPermissionDenied, http.StatusForbidden},
		{types.ErrNotFound, http.StatusNotFound},
		{types.ErrUnsupported, http.StatusMethodNotAllowed},
		{types.ErrDuplicate, http.StatusConflict},
		{types.ErrInternal, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		msg := decodeStoreError(tc.err, "123", ts)
		if msg.Ctrl == nil {
			t.Fatalf("decodeStoreError(%v) must produce a ctrl message", tc.err)
		}
		if msg.Ctrl.Code != tc.code {
			t.Errorf("decodeStoreError(%v): expected %d, got %d", tc.err, tc.code, msg.Ctrl.Code)
		}
		if msg.Ctrl.Id != "123" {
			t.Errorf("decodeStoreError(%v): message id lost", tc.err)
		}
	}
}

func TestCtrlConstructors(t *testing.T) {
	ts := types.TimeNow()

	testCases := []struct {
		msg  *ServerComMessage
		code int
	}{
		{NoErr("1", ts), http.StatusOK},
		{NoErrCreated("1", nil, ts), http.StatusCreated},
		{NoErrShutdown(ts), http.StatusResetContent},
		{ErrMalformed("1", ts), http.StatusBadRequest},
		{ErrAuthRequired("1", ts), http.StatusUnauthorized},
		{ErrAuthFailed("1", ts), http.StatusUnauthorized},
		{ErrPermissionDenied("1", ts), http.StatusForbidden},
		{ErrNotFound("1", ts), http.StatusNotFound},
		{ErrOperationNotAllowed("1", ts), http.StatusMethodNotAllowed},
		{ErrAlreadyExists("1", ts), http.StatusConflict},
		{ErrUnknown("1", ts), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		if tc.msg.Ctrl == nil {
			t.Fatal("Constructor must produce a ctrl message")
		}
		if tc.msg.Ctrl.Code != tc.code {
			t.Errorf("Expected code %d, got %d (%s)", tc.code, tc.msg.Ctrl.Code, tc.msg.Ctrl.Text)
		}
		if tc.msg.Ctrl.Timestamp != ts {
			t.Error("Constructor must carry the given timestamp")
		}
	}
}
