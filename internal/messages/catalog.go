package messages

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keys the customer endpoints resolve. The server asserts their presence
// at startup so a missing key is a boot failure, not a request failure.
const (
	KeyCustomerList         = "CustomerList"
	KeyCustomerGet          = "CustomerGet"
	KeyCustomerCreate       = "CustomerCreate"
	KeyCustomerUpdate       = "CustomerUpdate"
	KeyCustomerDelete       = "CustomerDelete"
	KeyCustomerNotFound     = "CustomerNotFound"
	KeyCustomerInfoInvalid  = "CustomerInfoInvalid"
	KeyCustomerStoreFailure = "CustomerStoreFailure"
)

// defaults are the built-in templates. A YAML file can override any of
// them (or add new keys) without code changes; templates are
// fmt.Sprintf format strings taking the method name first, then the
// contextual values.
var defaults = map[string]string{
	KeyCustomerList:         "%s: listing all customers",
	KeyCustomerGet:          "%s: fetching customer %s",
	KeyCustomerCreate:       "%s: creating customer %s %s",
	KeyCustomerUpdate:       "%s: updating customer %s",
	KeyCustomerDelete:       "%s: deleting customer %s",
	KeyCustomerNotFound:     "%s: customer %s was not found",
	KeyCustomerInfoInvalid:  "%s: customer info is invalid: %s",
	KeyCustomerStoreFailure: "%s: customer store operation failed: %v",
}

// MissingKeyError indicates a template key absent from the catalog. It
// signals a deployment defect, so callers are allowed to treat it as
// fatal.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("message catalog has no template for key %q", e.Key)
}

// Catalog maps message keys to format templates.
type Catalog struct {
	templates map[string]string
}

// NewCatalog returns a catalog holding the built-in templates.
func NewCatalog() *Catalog {
	templates := make(map[string]string, len(defaults))
	for k, v := range defaults {
		templates[k] = v
	}
	return &Catalog{templates: templates}
}

// Load builds a catalog from the defaults merged with the YAML file at
// path. An empty path returns the defaults unchanged.
func Load(path string) (*Catalog, error) {
	c := NewCatalog()
	if path == "" {
		return c, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message catalog %s: %w", path, err)
	}

	overrides := map[string]string{}
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse message catalog %s: %w", path, err)
	}
	for k, v := range overrides {
		c.templates[k] = v
	}
	return c, nil
}

// Resolve formats the template stored under key with the given args.
func (c *Catalog) Resolve(key string, args ...any) (string, error) {
	tmpl, ok := c.templates[key]
	if !ok {
		return "", &MissingKeyError{Key: key}
	}
	return fmt.Sprintf(tmpl, args...), nil
}

// MustResolve is Resolve, panicking on a missing key.
func (c *Catalog) MustResolve(key string, args ...any) string {
	msg, err := c.Resolve(key, args...)
	if err != nil {
		panic(err)
	}
	return msg
}

// Require checks that every key has a template.
func (c *Catalog) Require(keys ...string) error {
	for _, key := range keys {
		if _, ok := c.templates[key]; !ok {
			return &MissingKeyError{Key: key}
		}
	}
	return nil
}

// EndpointKeys lists every key the customer endpoints use.
func EndpointKeys() []string {
	return []string{
		KeyCustomerList,
		KeyCustomerGet,
		KeyCustomerCreate,
		KeyCustomerUpdate,
		KeyCustomerDelete,
		KeyCustomerNotFound,
		KeyCustomerInfoInvalid,
		KeyCustomerStoreFailure,
	}
}
