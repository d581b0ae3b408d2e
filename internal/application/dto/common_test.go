package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
)

func TestFlexInt_AceptaNumeroYCadena(t *testing.T) {
	var in struct {
		Quantity *dto.FlexInt `json:"quantity"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"quantity":7}`), &in))
	require.NotNil(t, in.Quantity.Int())
	assert.Equal(t, 7, *in.Quantity.Int())

	in.Quantity = nil
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":"12"}`), &in))
	require.NotNil(t, in.Quantity.Int())
	assert.Equal(t, 12, *in.Quantity.Int())
}

func TestFlexInt_OmitidoQuedaNil(t *testing.T) {
	var in struct {
		Quantity *dto.FlexInt `json:"quantity"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &in))
	assert.Nil(t, in.Quantity, "campo omitido no debe convertirse en 0")
	assert.Nil(t, in.Quantity.Int())
}

func TestFlexInt_NoParseable_FallaElUnmarshal(t *testing.T) {
	var in struct {
		Quantity *dto.FlexInt `json:"quantity"`
	}
	err := json.Unmarshal([]byte(`{"quantity":"abc"}`), &in)
	assert.Error(t, err, "un valor presente pero no parseable rechaza la request completa")
}
