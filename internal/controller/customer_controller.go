package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/shopcore/customer-service/internal/errors"
	"github.com/shopcore/customer-service/internal/messages"
	"github.com/shopcore/customer-service/internal/model"
	"github.com/shopcore/customer-service/internal/service"
)

// CustomerController translates HTTP requests into store calls and store
// outcomes into statuses, catalog messages, and log entries.
type CustomerController struct {
	Store   service.CustomerStore
	Catalog *messages.Catalog
	Logger  *zap.Logger
}

// NewCustomerController wires the controller with its collaborators.
func NewCustomerController(store service.CustomerStore, catalog *messages.Catalog, logger *zap.Logger) *CustomerController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerController{Store: store, Catalog: catalog, Logger: logger}
}

// Routes registers the customer endpoints on the router.
func (c *CustomerController) Routes(r chi.Router) {
	r.Get("/customers", c.ListCustomers)
	r.Get("/customers/{id}", c.GetCustomer)
	r.Post("/customers", c.CreateCustomer)
	r.Put("/customers/{id}", c.UpdateCustomer)
	r.Delete("/customers/{id}", c.DeleteCustomer)
}

// ListCustomers returns every customer; an empty list is a 200.
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	const method = "ListCustomers"
	c.Logger.Info(c.Catalog.MustResolve(messages.KeyCustomerList, method))

	customers, err := c.Store.List(r.Context())
	if err != nil {
		c.fail(w, method, "", err)
		return
	}

	c.respond(w, customers)
}

// GetCustomer returns the customer for {id} or 404.
func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	const method = "GetCustomer"
	id := chi.URLParam(r, "id")
	c.Logger.Info(c.Catalog.MustResolve(messages.KeyCustomerGet, method, id))

	customer, err := c.Store.Get(r.Context(), id)
	if err != nil {
		c.fail(w, method, id, err)
		return
	}

	c.respond(w, customer)
}

// CreateCustomer validates the input and stores a new customer.
func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	const method = "CreateCustomer"

	input, ok := c.decodeInput(w, r, method)
	if !ok {
		return
	}
	c.Logger.Info(c.Catalog.MustResolve(messages.KeyCustomerCreate, method, input.FirstName, input.LastName))

	customer, err := c.Store.Create(r.Context(), input)
	if err != nil {
		c.fail(w, method, "", err)
		return
	}

	c.respond(w, customer)
}

// UpdateCustomer validates the input, checks existence, then updates.
func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	const method = "UpdateCustomer"
	id := chi.URLParam(r, "id")

	input, ok := c.decodeInput(w, r, method)
	if !ok {
		return
	}
	c.Logger.Info(c.Catalog.MustResolve(messages.KeyCustomerUpdate, method, id))

	if !c.requireExists(w, r, method, id) {
		return
	}

	customer, err := c.Store.Update(r.Context(), id, input)
	if err != nil {
		c.fail(w, method, id, err)
		return
	}

	c.respond(w, customer)
}

// DeleteCustomer checks existence, deletes, and returns the deleted
// customer.
func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	const method = "DeleteCustomer"
	id := chi.URLParam(r, "id")
	c.Logger.Info(c.Catalog.MustResolve(messages.KeyCustomerDelete, method, id))

	if !c.requireExists(w, r, method, id) {
		return
	}

	customer, err := c.Store.Delete(r.Context(), id)
	if err != nil {
		c.fail(w, method, id, err)
		return
	}

	c.respond(w, customer)
}

// decodeInput parses and validates the request body. On failure it
// writes the 400 response and reports false; the store is never
// reached.
func (c *CustomerController) decodeInput(w http.ResponseWriter, r *http.Request, method string) (model.CustomerInput, bool) {
	var input model.CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		c.fail(w, method, "", apperrors.NewValidation(err.Error()))
		return input, false
	}
	if err := input.Validate(); err != nil {
		c.fail(w, method, "", apperrors.NewValidation(err.Error()))
		return input, false
	}
	return input, true
}

// requireExists maps a missing ID to 404 before any mutation reaches
// the store.
func (c *CustomerController) requireExists(w http.ResponseWriter, r *http.Request, method, id string) bool {
	exists, err := c.Store.Exists(r.Context(), id)
	if err != nil {
		c.fail(w, method, id, err)
		return false
	}
	if !exists {
		c.fail(w, method, id, apperrors.NewCustomerNotFound(id))
		return false
	}
	return true
}

// fail resolves the catalog message for the failure, logs it once at
// error level, and writes the status plus message body.
func (c *CustomerController) fail(w http.ResponseWriter, method, id string, err error) {
	var (
		status int
		msg    string
	)

	var notFound *apperrors.CustomerNotFoundError
	var invalid *apperrors.ValidationError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		msg = c.Catalog.MustResolve(messages.KeyCustomerNotFound, method, notFound.CustomerID)
	case errors.As(err, &invalid):
		status = http.StatusBadRequest
		msg = c.Catalog.MustResolve(messages.KeyCustomerInfoInvalid, method, invalid.Reason)
	default:
		status = http.StatusInternalServerError
		msg = c.Catalog.MustResolve(messages.KeyCustomerStoreFailure, method, err)
	}

	c.Logger.Error(msg, zap.String("method", method), zap.String("customer_id", id), zap.Error(err))
	http.Error(w, msg, status)
}

func (c *CustomerController) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}
