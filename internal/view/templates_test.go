package view

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	engine, err := NewEngine()
	assert.NoError(t, err, "Templates should parse without error")
	assert.NotNil(t, engine)
}

func TestRenderLoginPage(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	res := httptest.NewRecorder()
	err = engine.Render(res, "pages/login.html", TemplateData{Title: "Admin Login", CSRFToken: "tok"})
	require.NoError(t, err)

	body := res.Body.String()
	assert.Contains(t, body, "<form")
	assert.Contains(t, body, `value="tok"`)
	assert.True(t, strings.Contains(res.Header().Get("Content-Type"), "text/html"))
}
