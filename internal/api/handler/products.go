package handler

import (
	"net/http"

	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Hemanth1845/sales-forecasting/internal/usecases/cataloging"
	"github.com/Hemanth1845/sales-forecasting/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

func CreateProduct(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProduct")

		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.AddProduct(r.Context(), &product)
		if err != nil {
			handleServiceError(w, err, "Erro ao cadastrar produto")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListProducts(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListProducts")

		products, err := service.ListProducts(r.Context())
		if err != nil {
			handleServiceError(w, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func GetProduct(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetProduct")

		model := httprouter.ParamsFromContext(r.Context()).ByName("model")

		product, err := service.GetProduct(r.Context(), model)
		if err != nil {
			handleServiceError(w, err, "Erro ao buscar produto")
			return
		}

		writeJSON(w, http.StatusOK, product)
	}
}
