package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Rubber Ducks", CleanName("  Rubber   Ducks "))
	assert.Equal(t, "", CleanName("   "))
	assert.Equal(t, "Café", CleanName("Café"))
}

func TestIetfToIsoLangCode(t *testing.T) {
	assert.Equal(t, "uk_UA", IetfToIsoLangCode("uk"))
	assert.Equal(t, "ru_RU", IetfToIsoLangCode("ru"))
	assert.Equal(t, "en_US", IetfToIsoLangCode("de"))
}
