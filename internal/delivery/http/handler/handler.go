package handler

import (
	"net/http"

	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func callerFrom(identity *middleware.Identity) usecase.Caller {
	return usecase.Caller{
		UserID:    identity.UserID,
		Role:      identity.Role,
		ProfileID: identity.ProfileID,
	}
}

// pathID parses the {id} route variable as a UUID.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
