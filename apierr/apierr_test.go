package apierr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func renderStatus(t *testing.T, err error) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Render(c, err)
	return w.Code
}

func TestRenderMapsKinds(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Internal, http.StatusInternalServerError},
		{InvalidInput, http.StatusBadRequest},
		{UpstreamTimeout, http.StatusGatewayTimeout},
		{Upstream, http.StatusBadGateway},
	}
	for _, tt := range tests {
		if got := renderStatus(t, New(tt.kind, "boom")); got != tt.want {
			t.Errorf("kind %d rendered %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestRenderUnclassifiedError(t *testing.T) {
	if got := renderStatus(t, errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("plain error rendered %d, want 500", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(Upstream, "call failed", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
	if err.Error() != "call failed: underlying" {
		t.Errorf("Error() = %q", err.Error())
	}
}
