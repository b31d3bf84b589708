package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jumppad-labs/matrixpanel/pkg/bridge"
)

type ExecuteRequest struct {
	Args []string `json:"args"`
}

func (a *API) execute(w http.ResponseWriter, r *http.Request) {
	req := ExecuteRequest{}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		a.log.Error("could not decode execute request", "error", err)
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %s", err))
		return
	}

	out, err := a.bridge.Run(req.Args)
	if errors.Is(err, bridge.ErrNoArguments) {
		a.writeError(w, http.StatusBadRequest, "No command arguments provided")
		return
	}

	if err != nil {
		a.log.Error("Error handling execute request", "error", err)
		a.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %s", err))
		return
	}

	a.writeText(w, http.StatusOK, out)
}
