package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleRenderPanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool, panicValue ...interface{}) (err error) {
		defer func() {
			recoveredErr := HandleRenderPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom %d", 3)
		}

		if shouldPanic {
			if len(panicValue) > 0 {
				panic(panicValue[0])
			}
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom 3")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with error panic", func(t *testing.T) {
		assert.PanicsWithError(t, "surface bug", func() {
			testFn(false, true, errors.New("surface bug"))
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandleRenderPanicRecover(recover())
			}()
			var rec *Recorder
			rec.BeginPath()
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}
