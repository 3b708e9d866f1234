package messages_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/customer-service/internal/messages"
)

func TestResolveSubstitutesArguments(t *testing.T) {
	c := messages.NewCatalog()

	msg, err := c.Resolve(messages.KeyCustomerNotFound, "GetCustomer", "abc-123")
	require.NoError(t, err)
	assert.Contains(t, msg, "GetCustomer")
	assert.Contains(t, msg, "abc-123")
}

func TestResolveUnknownKeyFails(t *testing.T) {
	c := messages.NewCatalog()

	_, err := c.Resolve("NoSuchKey")
	require.Error(t, err)

	var missing *messages.MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "NoSuchKey", missing.Key)
}

func TestMustResolvePanicsOnUnknownKey(t *testing.T) {
	c := messages.NewCatalog()

	assert.Panics(t, func() {
		c.MustResolve("NoSuchKey")
	})
}

func TestRequireReportsFirstMissingKey(t *testing.T) {
	c := messages.NewCatalog()

	assert.NoError(t, c.Require(messages.EndpointKeys()...))
	assert.Error(t, c.Require(messages.KeyCustomerList, "NoSuchKey"))
}

func TestLoadAppliesYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yaml")
	contents := "CustomerNotFound: \"%s: aucun client %s\"\nGreeting: \"hello %s\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := messages.Load(path)
	require.NoError(t, err)

	msg, err := c.Resolve(messages.KeyCustomerNotFound, "GetCustomer", "abc-123")
	require.NoError(t, err)
	assert.Contains(t, msg, "aucun client abc-123")

	msg, err = c.Resolve("Greeting", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "hello Alice", msg)

	// Untouched defaults survive an override file.
	assert.NoError(t, c.Require(messages.EndpointKeys()...))
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	c, err := messages.Load("")
	require.NoError(t, err)
	assert.NoError(t, c.Require(messages.EndpointKeys()...))
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := messages.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
