package controllers

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/internal/shopconfig"
	pkgerrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

// ShopConfig serves the static storefront configuration.
func ShopConfig(provider *shopconfig.Provider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if provider == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "config provider unavailable"))
			return
		}

		view, err := provider.View()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building config"))
			return
		}
		responses.WriteSuccess(w, view)
	}
}
