package http

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"netops-dashboard/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppResponseWriter_ErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		svcErr *svcerrors.ServiceError
		want   string
	}{
		{name: "no error", want: ""},
		{name: "invalid argument", svcErr: errInvalidProviderKey(nil), want: codeInvalidProviderKey},
		{name: "internal", svcErr: errArchiveUnreadable(nil), want: codeInternalArchiveUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := newAppResponseWriter(httptest.NewRecorder(), 1)
			w.SetServiceError(tt.svcErr)

			assert.Equal(t, tt.want, w.ErrorCode())
		})
	}
}

func TestAppResponseWriter_TracksStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	w := newAppResponseWriter(rr, 1)

	w.WriteHeader(http.StatusAccepted)
	_, err := w.Write([]byte(`{"triggerId":"01T"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, w.Status())
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, 19, w.BytesWritten())
}

func TestResponseOutcome(t *testing.T) {
	t.Parallel()

	status, code := responseOutcome(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, status, "plain writers report 200")
	assert.Empty(t, code)

	w := newAppResponseWriter(httptest.NewRecorder(), 1)
	status, _ = responseOutcome(w)
	assert.Equal(t, http.StatusOK, status, "nothing written yet")

	w.SetServiceError(errArchiveNotFound(nil))
	w.WriteHeader(http.StatusNotFound)
	status, code = responseOutcome(w)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, codeArchiveNotFound, code)
}

func TestAppResponseWriter_Hijack(t *testing.T) {
	t.Parallel()

	t.Run("recorder cannot be hijacked", func(t *testing.T) {
		t.Parallel()

		_, _, err := newAppResponseWriter(httptest.NewRecorder(), 1).Hijack()
		assert.Error(t, err)
	})

	t.Run("server connection is handed over", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			conn, buf, err := newAppResponseWriter(rw, r.ProtoMajor).Hijack()
			if !assert.NoError(t, err) {
				return
			}
			defer conn.Close()
			_, _ = buf.WriteString("HTTP/1.1 101 Switching Protocols\r\n\r\n")
			_ = buf.Flush()
		}))
		defer srv.Close()

		conn, err := net.Dial("tcp", srv.Listener.Addr().String())
		require.NoError(t, err)
		defer conn.Close()
		_, err = conn.Write([]byte("GET /ws HTTP/1.1\r\nHost: dashboard\r\n\r\n"))
		require.NoError(t, err)

		line, err := bufio.NewReader(conn).ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "HTTP/1.1 101 Switching Protocols\r\n", line)
	})
}
