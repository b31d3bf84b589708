package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jumppad-labs/matrixpanel/pkg/config"
)

type AddressRequest struct {
	Address string `json:"address"`
}

type AddressResponse struct {
	Address string `json:"address"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func (a *API) saveAddress(w http.ResponseWriter, r *http.Request) {
	req := AddressRequest{}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		a.log.Error("could not decode save address request", "error", err)
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %s", err))
		return
	}

	err = a.store.Save(req.Address)
	if errors.Is(err, config.ErrEmptyAddress) {
		a.writeError(w, http.StatusBadRequest, "No address provided")
		return
	}

	if err != nil {
		a.log.Error("Error saving address", "error", err)
		a.writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error saving address: %s", err))
		return
	}

	a.log.Debug("Saved device address", "address", req.Address, "file", a.store.Path())
	a.writeJSON(w, http.StatusOK, StatusResponse{Status: "saved"})
}

func (a *API) loadAddress(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, AddressResponse{Address: a.store.Load()})
}
