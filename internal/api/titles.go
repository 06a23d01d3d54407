package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/models"
)

// TitleHandler serves the title query endpoints.
type TitleHandler struct {
	queries QueryService
	counter Counter
	log     *logrus.Logger
}

// NewTitleHandler creates a TitleHandler with the given dependencies.
func NewTitleHandler(queries QueryService, counter Counter, log *logrus.Logger) *TitleHandler {
	return &TitleHandler{queries: queries, counter: counter, log: log}
}

// SameDirectorWriter handles GET /api/imdb/titles/same-director-writer.
//
//	@Summary	Titles whose living director is also credited as writer
//	@Tags		titles
//	@Produce	json
//	@Param		page	query		int	false	"Page number (0-indexed)"	default(0)
//	@Param		size	query		int	false	"Items per page"			default(10)
//	@Success	200		{object}	models.PagedResponse[models.Title]
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	503		{object}	httputil.ErrorResponse
//	@Router		/titles/same-director-writer [get]
func (h *TitleHandler) SameDirectorWriter(c *gin.Context) {
	h.counter.Increment()

	page, size, ok := pageParams(c)
	if !ok {
		return
	}

	titles, err := h.queries.TitlesWithSameDirectorAndWriter(page, size)
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	total, err := h.queries.CountTitlesWithSameDirectorAndWriter()
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "titles.same_director_writer", "page": page, "size": size, "count": len(titles),
	}).Info("audit")

	c.JSON(http.StatusOK, models.NewPagedResponse(titles, page, size, total))
}

// BothActors handles GET /api/imdb/titles/both-actors.
//
//	@Summary	Titles two actors are both credited on, looked up by id
//	@Tags		titles
//	@Produce	json
//	@Param		actorId1	query		string	true	"First actor id"
//	@Param		actorId2	query		string	true	"Second actor id"
//	@Success	200			{array}		models.Title
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Failure	404			{object}	httputil.ErrorResponse
//	@Router		/titles/both-actors [get]
func (h *TitleHandler) BothActors(c *gin.Context) {
	h.counter.Increment()

	actor1, ok := requireQuery(c, "actorId1")
	if !ok {
		return
	}

	actor2, ok := requireQuery(c, "actorId2")
	if !ok {
		return
	}

	if actor1 == actor2 {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "actor1 and actor2 must be different")

		return
	}

	titles, err := h.queries.TitlesWithBothActors(actor1, actor2)
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "titles.both_actors", "actor1": actor1, "actor2": actor2, "count": len(titles),
	}).Info("audit")

	c.JSON(http.StatusOK, titles)
}

// BothActorsByNames handles GET /api/imdb/titles/both-actors-by-names.
//
//	@Summary	Paginated titles two actors are both credited on, looked up by id or name
//	@Tags		titles
//	@Produce	json
//	@Param		actorName1	query		string	true	"First actor id or primary name"
//	@Param		actorName2	query		string	true	"Second actor id or primary name"
//	@Param		page		query		int		false	"Page number (0-indexed)"	default(0)
//	@Param		size		query		int		false	"Items per page"			default(10)
//	@Success	200			{object}	models.PagedResponse[models.Title]
//	@Failure	400			{object}	httputil.ErrorResponse
//	@Failure	404			{object}	httputil.ErrorResponse
//	@Router		/titles/both-actors-by-names [get]
func (h *TitleHandler) BothActorsByNames(c *gin.Context) {
	h.counter.Increment()

	actor1, ok := requireQuery(c, "actorName1")
	if !ok {
		return
	}

	actor2, ok := requireQuery(c, "actorName2")
	if !ok {
		return
	}

	page, size, ok := pageParams(c)
	if !ok {
		return
	}

	titles, err := h.queries.TitlesWithBothActorsPaged(actor1, actor2, page, size)
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	total, err := h.queries.CountTitlesWithBothActors(actor1, actor2)
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "titles.both_actors_by_names", "actor1": actor1, "actor2": actor2, "count": len(titles),
	}).Info("audit")

	c.JSON(http.StatusOK, models.NewPagedResponse(titles, page, size, total))
}

// BestByGenre handles GET /api/imdb/titles/best-by-genre.
//
//	@Summary	Top five titles per release year for a genre
//	@Tags		titles
//	@Produce	json
//	@Param		genre	query		string	true	"Exact genre label"
//	@Param		page	query		int		false	"Page number over year groups (0-indexed)"	default(0)
//	@Param		size	query		int		false	"Year groups per page"						default(10)
//	@Success	200		{object}	models.PagedResponse[models.BestTitlesByYear]
//	@Failure	400		{object}	httputil.ErrorResponse
//	@Failure	404		{object}	httputil.ErrorResponse
//	@Router		/titles/best-by-genre [get]
func (h *TitleHandler) BestByGenre(c *gin.Context) {
	h.counter.Increment()

	genre, ok := requireQuery(c, "genre")
	if !ok {
		return
	}

	page, size, ok := pageParams(c)
	if !ok {
		return
	}

	groups, err := h.queries.BestTitlesByYearForGenre(genre, page, size)
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	total, err := h.queries.CountYearsForGenre(genre)
	if err != nil {
		respondQueryError(c, h.log, err)

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "titles.best_by_genre", "genre": genre, "page": page, "size": size, "count": len(groups),
	}).Info("audit")

	c.JSON(http.StatusOK, models.NewPagedResponse(groups, page, size, total))
}
