package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse é o envelope das listagens. DeadEnd só aparece nas
// escolhas do assistente, onde lista vazia impede avançar.
type ListResponse[T any] struct {
	Data    []T   `json:"data"`
	Total   int   `json:"total"`
	DeadEnd *bool `json:"dead_end,omitempty"`
}

func newList[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Data: data, Total: len(data)}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List nunca serializa data como null.
func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, newList(data))
}

// Choices é o List das etapas do assistente: dead_end indica que não há
// opção para seguir.
func Choices[T any](c *gin.Context, data []T) {
	resp := newList(data)
	deadEnd := resp.Total == 0
	resp.DeadEnd = &deadEnd
	c.JSON(http.StatusOK, resp)
}
