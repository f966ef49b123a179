package httpclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelkit/httpclient"
	"modelkit/pkg/apperrors"
)

func newTestServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("hello"))
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/hello", http.StatusFound)
	})
	mux.HandleFunc("/echo-method", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Method))
	})
	return httptest.NewServer(mux)
}

func TestContents(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	req := httpclient.New(ts.URL + "/hello")
	defer req.Close()

	body, err := req.Contents()
	require.NoError(t, err)
	assert.Equal(t, "hello", body)
}

func TestSetOption(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	t.Run("unknown option rejected immediately", func(t *testing.T) {
		req := httpclient.New(ts.URL)
		defer req.Close()

		err := req.SetOption("bogus", 1)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeUnknownOption, apperrors.CodeOf(err))
	})

	t.Run("wrong value type rejected", func(t *testing.T) {
		req := httpclient.New(ts.URL)
		defer req.Close()

		err := req.SetOption("timeout", "not a duration")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeInvalidOption, apperrors.CodeOf(err))
	})

	t.Run("method option is applied", func(t *testing.T) {
		req := httpclient.New(ts.URL + "/echo-method")
		defer req.Close()

		require.NoError(t, req.SetOption("method", "post"))
		require.NoError(t, req.SetOption("timeout", 5*time.Second))

		body, err := req.Contents()
		require.NoError(t, err)
		assert.Equal(t, "POST", body)
	})

	t.Run("both constructors follow redirects by default", func(t *testing.T) {
		req := httpclient.New(ts.URL + "/redirect")
		defer req.Close()

		resp, err := req.Send()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Нулевые Options дают то же поведение, что и New
		other := httpclient.NewWithOptions(ts.URL+"/redirect", httpclient.Options{})
		defer other.Close()

		resp, err = other.Send()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("redirects can be disabled", func(t *testing.T) {
		req := httpclient.New(ts.URL + "/redirect")
		defer req.Close()

		require.NoError(t, req.SetOption("follow_redirects", false))

		resp, err := req.Send()
		require.NoError(t, err)
		assert.Equal(t, http.StatusFound, resp.StatusCode)
	})
}

func TestInfo(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	req := httpclient.New(ts.URL + "/hello")
	defer req.Close()

	t.Run("not sent yet", func(t *testing.T) {
		_, err := req.Info("status_code")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotSent, apperrors.CodeOf(err))
	})

	_, err := req.Contents()
	require.NoError(t, err)

	t.Run("known keys", func(t *testing.T) {
		status, err := req.Info("status_code")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)

		contentType, err := req.Info("content_type")
		require.NoError(t, err)
		assert.Equal(t, "text/plain", contentType)

		url, err := req.Info("effective_url")
		require.NoError(t, err)
		assert.Equal(t, ts.URL+"/hello", url)

		elapsed, err := req.Info("total_time")
		require.NoError(t, err)
		assert.Greater(t, elapsed.(time.Duration), time.Duration(0))
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := req.Info("bogus")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeUnknownInfoKey, apperrors.CodeOf(err))
	})
}

func TestClose(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	req := httpclient.New(ts.URL + "/hello")
	_, err := req.Contents()
	require.NoError(t, err)

	require.NoError(t, req.Close())

	t.Run("double close is an error", func(t *testing.T) {
		err := req.Close()
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeAlreadyClosed, apperrors.CodeOf(err))
	})

	t.Run("send after close is an error", func(t *testing.T) {
		_, err := req.Send()
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeAlreadyClosed, apperrors.CodeOf(err))
	})
}

func TestTransportErrorPropagated(t *testing.T) {
	// Закрытый сервер: ошибка транспорта возвращается как есть
	ts := newTestServer()
	url := ts.URL
	ts.Close()

	req := httpclient.New(url)
	defer req.Close()

	_, err := req.Send()
	require.Error(t, err)

	var appErr *apperrors.AppError
	assert.False(t, apperrors.As(err, &appErr), "ошибка транспорта не должна оборачиваться")
}
