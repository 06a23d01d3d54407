package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PersonHandler serves the person lookup endpoint.
type PersonHandler struct {
	queries QueryService
	counter Counter
	log     *logrus.Logger
}

// NewPersonHandler creates a PersonHandler with the given dependencies.
func NewPersonHandler(queries QueryService, counter Counter, log *logrus.Logger) *PersonHandler {
	return &PersonHandler{queries: queries, counter: counter, log: log}
}

// Get handles GET /api/imdb/person/:id.
//
//	@Summary	Look up a person by identifier
//	@Tags		people
//	@Produce	json
//	@Param		id	path		string	true	"Person identifier (nconst)"
//	@Success	200	{object}	models.Person
//	@Failure	400	{object}	httputil.ErrorResponse
//	@Failure	404	{object}	httputil.ErrorResponse
//	@Router		/person/{id} [get]
func (h *PersonHandler) Get(c *gin.Context) {
	h.counter.Increment()

	person, err := h.queries.PersonByID(c.Param("id"))
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	h.log.WithFields(logrus.Fields{"action": "person.get", "person_id": person.Nconst}).Info("audit")

	c.JSON(http.StatusOK, person)
}
