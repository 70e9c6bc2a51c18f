package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vatika/pkg/usecase"
)

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("primary success short-circuits", func(t *testing.T) {
		primary := okProvider("openai", "primary answer")
		secondary := okProvider("gemini", "secondary answer")
		r := usecase.NewResolver(primary, secondary)

		result := r.Resolve(ctx, "prompt")
		gt.Value(t, result.Status).Equal(usecase.ResolveSucceeded)
		gt.Value(t, result.Text).Equal("primary answer")
		gt.Value(t, result.Provider).Equal("openai")
		gt.Array(t, result.Attempts).Length(0)
		gt.Value(t, primary.Calls()).Equal(1)
		gt.Value(t, secondary.Calls()).Equal(0)
	})

	t.Run("falls back to secondary", func(t *testing.T) {
		primary := failingProvider("openai")
		secondary := okProvider("gemini", "secondary answer")
		r := usecase.NewResolver(primary, secondary)

		result := r.Resolve(ctx, "prompt")
		gt.Value(t, result.Status).Equal(usecase.ResolveSucceeded)
		gt.Value(t, result.Text).Equal("secondary answer")
		gt.Value(t, result.Provider).Equal("gemini")
		gt.Array(t, result.Attempts).Length(1).Required()
		gt.Value(t, result.Attempts[0].Provider).Equal("openai")
		gt.Value(t, primary.Calls()).Equal(1)
		gt.Value(t, secondary.Calls()).Equal(1)
	})

	t.Run("empty text is a failure of that provider", func(t *testing.T) {
		primary := okProvider("openai", "   ")
		secondary := okProvider("gemini", "secondary answer")
		r := usecase.NewResolver(primary, secondary)

		result := r.Resolve(ctx, "prompt")
		gt.Value(t, result.Text).Equal("secondary answer")
		gt.Array(t, result.Attempts).Length(1)
	})

	t.Run("all failed", func(t *testing.T) {
		r := usecase.NewResolver(failingProvider("openai"), failingProvider("gemini"))

		result := r.Resolve(ctx, "prompt")
		gt.Value(t, result.Status).Equal(usecase.ResolveAllFailed)
		gt.Value(t, result.Text).Equal("")
		gt.Array(t, result.Attempts).Length(2)
		gt.Value(t, result.Err()).NotNil()
	})

	t.Run("single provider surfaces its error", func(t *testing.T) {
		p := failingProvider("openai")
		result := usecase.NewResolver(p).Resolve(ctx, "prompt")
		gt.Value(t, result.Status).Equal(usecase.ResolveAllFailed)
		gt.String(t, result.Err().Error()).Contains("provider down")
	})

	t.Run("no providers", func(t *testing.T) {
		result := usecase.NewResolver().Resolve(ctx, "prompt")
		gt.Value(t, result.Status).Equal(usecase.ResolveAllFailed)
		gt.Value(t, result.Err()).Nil()
	})

	t.Run("each call is a single pass", func(t *testing.T) {
		primary := failingProvider("openai")
		r := usecase.NewResolver(primary)
		r.Resolve(ctx, "prompt")
		r.Resolve(ctx, "prompt")
		gt.Value(t, primary.Calls()).Equal(2)
	})
}

func TestResolver_Providers(t *testing.T) {
	r := usecase.NewResolver(okProvider("openai", "a"), okProvider("gemini", "b"))
	gt.Value(t, r.Providers()).Equal([]string{"openai", "gemini"})
}
