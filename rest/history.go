package rest

import (
	"net/http"

	"github.com/Sams101/calculator-app/history"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// HistoryParams contains all the bound parameters for the /history
// endpoint.
type HistoryParams struct {
	// Count is the number of entries to report; zero means everything up
	// to the store's cap.
	Count int `form:"count" json:"count,omitempty"`
}

// DoGetHistory handles GET /history: reports the most recent evaluations,
// newest first.
func (server *Server) DoGetHistory(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	params := HistoryParams{}
	if err := ctx.ShouldBindWith(&params, binding.Form); err != nil {
		panic(NewError(http.StatusBadRequest, err.Error()).
			WithDetails("failed to parse request parameters"))
	}

	entries, err := server.history.Recent(params.Count)
	if err != nil {
		panic(NewError(http.StatusInternalServerError, err.Error()).
			WithDetails("failed to read history"))
	}
	if entries == nil {
		entries = []history.Entry{} // report [] instead of null
	}

	ctx.IndentedJSON(http.StatusOK, entries)
}

// DoDeleteHistory handles DELETE /history: clears the log.
func (server *Server) DoDeleteHistory(ctx *gin.Context) {
	defer RecoverFromPanic(ctx)

	if err := server.history.Clear(); err != nil {
		panic(NewError(http.StatusInternalServerError, err.Error()).
			WithDetails("failed to clear history"))
	}

	ctx.IndentedJSON(http.StatusOK, gin.H{"cleared": true})
}
