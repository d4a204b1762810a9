package rest

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fake server bound to an in-process router
type fakeServer struct {
	server *Server
	mux    *gin.Engine
}

// create new fake server with a temporary history file
func newFake(t *testing.T) *fakeServer {
	gin.SetMode(gin.ReleaseMode)
	mux := gin.New()

	fs := &fakeServer{
		server: NewServer(),
		mux:    mux,
	}
	fs.server.Config.History.File = filepath.Join(t.TempDir(), "history.db")
	fs.server.Config.History.Limit = 5

	if err := fs.server.Prepare(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(fs.server.Close)

	mux.GET("/evaluate", fs.server.DoEvaluate)
	mux.POST("/evaluate", fs.server.DoEvaluate)
	mux.GET("/history", fs.server.DoGetHistory)
	mux.DELETE("/history", fs.server.DoDeleteHistory)
	mux.GET("/logging/level", fs.server.DoLoggingLevel)

	return fs
}

// do issues an in-process request and decodes the JSON response into out.
func (fs *fakeServer) do(t *testing.T, method, path string, query url.Values, out interface{}) int {
	u := path
	if len(query) != 0 {
		u += "?" + query.Encode()
	}
	req := httptest.NewRequest(method, u, nil)
	w := httptest.NewRecorder()
	fs.mux.ServeHTTP(w, req)
	if out != nil {
		if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: bad response %q: %v", method, u, w.Body.String(), err)
		}
	}
	return w.Code
}

func TestServerDefaults(t *testing.T) {
	s := NewServer()
	assert.Equal(t, ":8765", s.Config.ListenAddress)
	assert.Equal(t, 240, s.Config.MaxExpressionLength)
	assert.Equal(t, 20, s.Config.History.Limit)
}

func TestServerParseConfig(t *testing.T) {
	s := NewServer()

	// missing file
	assert.Error(t, s.ParseConfig("/does/not/exist.yml"))

	// empty name is a no-op
	assert.NoError(t, s.ParseConfig(""))

	path := filepath.Join(t.TempDir(), "server.yml")
	body := `
address: ":9999"
debug-mode: true
max-expression-length: 100
history:
  file: "my-history.db"
  limit: 7
`
	assert.NoError(t, ioutil.WriteFile(path, []byte(body), 0644))
	assert.NoError(t, s.ParseConfig(path))
	assert.Equal(t, ":9999", s.Config.ListenAddress)
	assert.True(t, s.Config.DebugMode)
	assert.Equal(t, 100, s.Config.MaxExpressionLength)
	assert.Equal(t, "my-history.db", s.Config.History.File)
	assert.Equal(t, 7, s.Config.History.Limit)

	// invalid values are rejected
	assert.NoError(t, ioutil.WriteFile(path, []byte("max-expression-length: -1"), 0644))
	assert.Error(t, s.ParseConfig(path))

	assert.NoError(t, ioutil.WriteFile(path, []byte("history: {file: \"\"}"), 0644))
	assert.Error(t, s.ParseConfig(path))

	assert.NoError(t, ioutil.WriteFile(path, []byte("{{not yaml"), 0644))
	assert.Error(t, s.ParseConfig(path))
}

func TestLoggingLevel(t *testing.T) {
	fs := newFake(t)

	info := map[string]string{}
	code := fs.do(t, http.MethodGet, "/logging/level", nil, &info)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, info, "core")
	assert.Contains(t, info, "core/history")

	// change a level
	code = fs.do(t, http.MethodGet, "/logging/level",
		url.Values{"core/history": []string{"debug"}}, &info)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "debug", info["core/history"])

	// unknown logger
	code = fs.do(t, http.MethodGet, "/logging/level",
		url.Values{"no-such": []string{"debug"}}, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// bad level
	code = fs.do(t, http.MethodGet, "/logging/level",
		url.Values{"core": []string{"nope"}}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
