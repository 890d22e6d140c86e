package query

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/codementor/server/internal/assistant"
	"codeberg.org/codementor/server/internal/errors"
)

// upper bound on a request body; packaging keeps far less than this
const maxBodyBytes = 32 << 20

// Handler godoc
// @Summary Ask about a codebase
// @Description Packages the query and file excerpts into a prompt, relays it to the configured LLM and returns the assistant's answer
// @Tags query
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Query payload"
// @Success 200 {object} QueryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/query [post]
func Handler(asker Asker) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if stderrors.As(err, &tooLarge) {
				errors.BadRequest(c, "payload too large.")
				return
			}

			errors.BadRequest(c, "failed to read request body.")
			return
		}

		payload, err := assistant.DecodePayload(body)
		if err != nil {
			errors.BadRequest(c, err.Error())
			return
		}

		answer, err := asker.Ask(c.Request.Context(), payload)
		if err != nil {
			var vErr *assistant.ValidationError
			if stderrors.As(err, &vErr) {
				errors.BadRequest(c, vErr.Message)
				return
			}

			errors.InternalError(c, err.Error(), err)
			return
		}

		c.JSON(http.StatusOK, QueryResponse{
			Assistant: answer.Text,
			Usage:     answer.Usage,
		})
	}
}
