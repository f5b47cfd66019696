package snapshot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesHas(t *testing.T) {
	cats := CategorySystem | CategoryMemory | CategoryCPU
	assert.True(t, cats.Has(CategorySystem))
	assert.True(t, cats.Has(CategoryMemory))
	assert.True(t, cats.Has(CategoryCPU))
	assert.False(t, cats.Has(CategoryDisks))
	assert.False(t, cats.Has(CategoryProcesses))
}

func TestDriveKind(t *testing.T) {
	assert.Equal(t, DiskKindSSD, driveKind("SSD", "SCSI"))
	assert.Equal(t, DiskKindSSD, driveKind("ssd", ""))
	assert.Equal(t, DiskKindSSD, driveKind("Unknown", "NVMe"))
	assert.Equal(t, DiskKindHDD, driveKind("HDD", "SCSI"))
	assert.Equal(t, DiskKindUnknown, driveKind("FDD", ""))
	assert.Equal(t, DiskKindUnknown, driveKind("", ""))
	assert.Equal(t, DiskKindUnknown, driveKind("Unknown", "unknown"))
}

func TestErrorsSetAndFor(t *testing.T) {
	var e Errors
	boom := errors.New("boom")

	all := []Categories{
		CategorySystem, CategoryCPU, CategoryMemory, CategoryDisks,
		CategoryNetworks, CategoryComponents, CategoryProcesses,
	}
	for _, cat := range all {
		assert.NoError(t, e.For(cat))
	}

	e.set(CategoryNetworks, boom)
	for _, cat := range all {
		if cat == CategoryNetworks {
			assert.ErrorIs(t, e.For(cat), boom)
		} else {
			assert.NoError(t, e.For(cat))
		}
	}
}

func TestIsUnsupported(t *testing.T) {
	assert.True(t, IsUnsupported(errors.New("sensors: not implemented yet")))
	assert.True(t, IsUnsupported(errors.New("Not Supported on this platform")))
	assert.False(t, IsUnsupported(errors.New("permission denied")))
	assert.False(t, IsUnsupported(nil))
}

func TestIsReadableTemp(t *testing.T) {
	assert.True(t, isReadableTemp(45.5))
	assert.False(t, isReadableTemp(0))
	assert.False(t, isReadableTemp(-1))
}

func TestMaxTemp(t *testing.T) {
	assert.Equal(t, 90.0, maxTemp(90.0, 105.0))
	assert.Equal(t, 105.0, maxTemp(0, 105.0))
	assert.Equal(t, 0.0, maxTemp(0, 0))
}
