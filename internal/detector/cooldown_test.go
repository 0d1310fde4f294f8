package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCooldown_UnknownSymbol(t *testing.T) {
	c := NewCooldown(15 * time.Minute)
	assert.True(t, c.IsCooledDown("BTCUSDT", testNow))
}

func TestCooldown_WindowBoundary(t *testing.T) {
	window := 15 * time.Minute
	c := NewCooldown(window)
	c.Record("BTCUSDT", testNow)

	assert.False(t, c.IsCooledDown("BTCUSDT", testNow))
	assert.False(t, c.IsCooledDown("BTCUSDT", testNow.Add(window-time.Second)))
	assert.True(t, c.IsCooledDown("BTCUSDT", testNow.Add(window+time.Second)))

	// другой инструмент кулдауном не затронут
	assert.True(t, c.IsCooledDown("ETHUSDT", testNow))
}

func TestCooldown_RecordOverwrites(t *testing.T) {
	window := 15 * time.Minute
	c := NewCooldown(window)
	c.Record("BTCUSDT", testNow)
	later := testNow.Add(window + time.Minute)
	c.Record("BTCUSDT", later)

	assert.False(t, c.IsCooledDown("BTCUSDT", later.Add(window-time.Second)))
	assert.True(t, c.IsCooledDown("BTCUSDT", later.Add(window+time.Second)))
}

func TestCooldown_Sweep(t *testing.T) {
	window := 15 * time.Minute
	c := NewCooldown(window)
	c.Record("OLDUSDT", testNow)
	c.Record("NEWUSDT", testNow.Add(25*time.Minute))

	c.Sweep(testNow.Add(31*time.Minute), 2*window)
	assert.Equal(t, 1, c.Len())

	// вычищенный инструмент снова «остыл» — окно и так давно прошло
	assert.True(t, c.IsCooledDown("OLDUSDT", testNow.Add(31*time.Minute)))
	assert.False(t, c.IsCooledDown("NEWUSDT", testNow.Add(31*time.Minute)))
}
