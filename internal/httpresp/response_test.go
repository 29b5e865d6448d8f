package httpresp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestList_NilIsEmptyArray(t *testing.T) {
	w := render(func(c *gin.Context) { List[string](c, nil) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"total":0}`, w.Body.String())
}

func TestChoices_DeadEnd(t *testing.T) {
	w := render(func(c *gin.Context) { Choices[string](c, nil) })
	assert.JSONEq(t, `{"data":[],"total":0,"dead_end":true}`, w.Body.String())

	w = render(func(c *gin.Context) { Choices(c, []string{"ana"}) })
	assert.JSONEq(t, `{"data":["ana"],"total":1,"dead_end":false}`, w.Body.String())
}
