package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "new",
			err:  New(ErrCodeInvalidDepth, "depth must be >= 0, got %d", -1),
			want: "INVALID_DEPTH: depth must be >= 0, got -1",
		},
		{
			name: "wrapped",
			err:  Wrap(ErrCodeFileNotFound, fs.ErrNotExist, "dictionary %s not found", "words.txt"),
			want: "FILE_NOT_FOUND: dictionary words.txt not found: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := Wrap(ErrCodeInvalidDictionary, fs.ErrPermission, "decode %s dictionary", "json")
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("wrapped cause should stay visible to errors.Is")
	}
	if errors.Unwrap(err) != fs.ErrPermission {
		t.Errorf("Unwrap() = %v", errors.Unwrap(err))
	}
}

func TestCodeLookup(t *testing.T) {
	invalidWord := New(ErrCodeInvalidWord, "word %q contains %q, which is outside the alphabet", "c4t", '4')

	tests := []struct {
		name     string
		err      error
		code     Code
		wantIs   bool
		wantCode Code
	}{
		{"direct", invalidWord, ErrCodeInvalidWord, true, ErrCodeInvalidWord},
		{"other code", invalidWord, ErrCodeInvalidDepth, false, ErrCodeInvalidWord},
		{"fmt wrapped", fmt.Errorf("distance: %w", invalidWord), ErrCodeInvalidWord, true, ErrCodeInvalidWord},
		{"outermost code wins", Wrap(ErrCodeInvalidConfig, invalidWord, "config"), ErrCodeInvalidConfig, true, ErrCodeInvalidConfig},
		{"plain error", fs.ErrNotExist, ErrCodeFileNotFound, false, ""},
		{"nil", nil, ErrCodeInternal, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is(%s) = %v, want %v", tt.code, got, tt.wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeInvalidFormat, "format %q is not one of svg, dot, json", "gif"), `format "gif" is not one of svg, dot, json`},
		{"coded with cause", Wrap(ErrCodeInvalidConfig, fs.ErrNotExist, "parse config"), "parse config"},
		{"plain", fmt.Errorf("write out.svg: %w", fs.ErrPermission), "write out.svg: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   Code
	}{
		{"bad word", New(ErrCodeInvalidWord, "word is empty"), http.StatusBadRequest, ErrCodeInvalidWord},
		{"bad depth", fmt.Errorf("paths: %w", New(ErrCodeInvalidDepth, "depth 99 exceeds max 10")), http.StatusBadRequest, ErrCodeInvalidDepth},
		{"unknown format", New(ErrCodeInvalidFormat, "format %q", "gif"), http.StatusBadRequest, ErrCodeInvalidFormat},
		{"missing route", New(ErrCodeNotFound, "no route"), http.StatusNotFound, ErrCodeNotFound},
		{"unsupported", New(ErrCodeUnsupported, "no renderer"), http.StatusNotImplemented, ErrCodeUnsupported},
		{"broken dictionary", New(ErrCodeInvalidDictionary, "empty"), http.StatusInternalServerError, ErrCodeInvalidDictionary},
		{"uncoded", fs.ErrClosed, http.StatusInternalServerError, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := HTTPStatus(tt.err)
			if status != tt.wantStatus || code != tt.wantCode {
				t.Errorf("HTTPStatus() = (%d, %s), want (%d, %s)", status, code, tt.wantStatus, tt.wantCode)
			}
		})
	}
}
