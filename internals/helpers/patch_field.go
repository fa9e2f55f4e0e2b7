package helper

import (
	"github.com/bytedance/sonic"
)

/* =========================================================
   PATCH FIELD: tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// IsSet: field dikirim dengan nilai non-null (termasuk false, 0, "").
func (p PatchField[T]) IsSet() bool { return p.Present && p.Value != nil }

// Apply menyalin nilai ke dst hanya bila field dikirim dengan nilai.
func (p PatchField[T]) Apply(dst *T) bool {
	if !p.IsSet() {
		return false
	}
	*dst = *p.Value
	return true
}

// ApplyNullable untuk kolom nullable: null eksplisit mengosongkan kolom.
func (p PatchField[T]) ApplyNullable(dst **T) bool {
	if !p.Present {
		return false
	}
	if p.Value == nil {
		*dst = nil
		return true
	}
	v := *p.Value
	*dst = &v
	return true
}

// dipakai validator: nilai absen/null terlihat sebagai pointer nil (omitnil).
func (p PatchField[T]) validationValue() any {
	return p.Value
}

func Set[T any](v T) PatchField[T] {
	return PatchField[T]{Present: true, Value: &v}
}
