// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package to

import (
	"testing"
)

func TestPtr(t *testing.T) {
	t.Parallel()

	t.Run("int pointer round trip", func(t *testing.T) {
		t.Parallel()

		p := Ptr(42)
		if *p != 42 {
			t.Fatalf("*Ptr(42) = %d, want 42", *p)
		}
	})

	t.Run("string pointer round trip", func(t *testing.T) {
		t.Parallel()

		p := Ptr("ingress")
		if *p != "ingress" {
			t.Fatalf("*Ptr(%q) = %q, want %q", "ingress", *p, "ingress")
		}
	})
}

func TestValOrZero(t *testing.T) {
	t.Parallel()

	t.Run("nil pointer returns zero value", func(t *testing.T) {
		t.Parallel()

		var ptr *int32
		if got := ValOrZero(ptr); got != 0 {
			t.Fatalf("ValOrZero(nil) = %d, want 0", got)
		}
	})

	t.Run("non-nil pointer returns pointed value", func(t *testing.T) {
		t.Parallel()

		value := int32(3)
		if got := ValOrZero(&value); got != value {
			t.Fatalf("ValOrZero(&%d) = %d, want %d", value, got, value)
		}
	})

	t.Run("nil string pointer returns empty string", func(t *testing.T) {
		t.Parallel()

		var ptr *string
		if got := ValOrZero(ptr); got != "" {
			t.Fatalf("ValOrZero(nil) = %q, want empty string", got)
		}
	})
}
