package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept value sent by Datastar actions.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarRequestHeader is set to "true" on every Datastar action.
	DataStarRequestHeader = "Datastar-Request"
)

// PatchOuter morphs the targeted element with the patch.
const PatchOuter = datastar.ElementPatchModeOuter

// IsDataStar reports whether the request was issued by a Datastar action and
// expects server-sent events.
func IsDataStar(r *http.Request) bool {
	if strings.EqualFold(r.Header.Get(DataStarRequestHeader), "true") {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader)
}
