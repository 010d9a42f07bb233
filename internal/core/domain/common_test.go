package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	t.Run("persisted entity with label", func(t *testing.T) {
		acc := Account{ID: "42", Name: "Checking"}
		ref, err := NewReference(acc)
		require.NoError(t, err)
		assert.Equal(t, "42", ref.Value)
		assert.Equal(t, "Checking", ref.Name)
	})

	t.Run("persisted entity without label", func(t *testing.T) {
		inv := Invoice{ID: "7"}
		ref, err := NewReference(inv)
		require.NoError(t, err)
		assert.Equal(t, "7", ref.Value)
		assert.Empty(t, ref.Name)
	})

	t.Run("unpersisted entity fails", func(t *testing.T) {
		_, err := NewReference(Account{Name: "NoID"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Account")
	})
}

func TestCustomerEntityLabelPrefersFullyQualifiedName(t *testing.T) {
	c := Customer{DisplayName: "Acme", FullyQualifiedName: "Parent:Acme"}
	assert.Equal(t, "Parent:Acme", c.EntityLabel())

	c.FullyQualifiedName = ""
	assert.Equal(t, "Acme", c.EntityLabel())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2024, 3, 9, 17, 30, 0, 0, time.UTC))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-09"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateUnmarshalTruncatesTimestamps(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T00:00:00-08:00"`), &d))
	assert.Equal(t, "2024-03-09", d.Format("2006-01-02"))
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-01-14", d.AddDays(15).Format("2006-01-02"))
}
