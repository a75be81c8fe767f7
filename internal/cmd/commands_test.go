package cmd

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jimezsa/eatcli/internal/config"
	"github.com/jimezsa/eatcli/internal/rating"
)

func TestRateMenuRequiresSelection(t *testing.T) {
	caller := &fakeCaller{}
	ctx, _, _ := newTestContext(caller)

	err := (&RateMenuCmd{ID: "3"}).Run(ctx)
	if err == nil || err.Error() != "Please select a rating before submitting" {
		t.Fatalf("Run() error = %v", err)
	}
	if !errors.Is(err, rating.ErrNoSelection) {
		t.Fatalf("error does not wrap ErrNoSelection: %v", err)
	}
	if len(caller.calls) != 0 {
		t.Fatalf("unexpected requests: %+v", caller.calls)
	}
}

func TestRateMenuOutOfRange(t *testing.T) {
	caller := &fakeCaller{}
	ctx, _, _ := newTestContext(caller)

	if err := (&RateMenuCmd{ID: "3", Stars: 7}).Run(ctx); err == nil {
		t.Fatalf("Run() expected error for 7 stars")
	}
	if len(caller.calls) != 0 {
		t.Fatalf("unexpected requests: %+v", caller.calls)
	}
}

func TestRateMenuRejected(t *testing.T) {
	caller := &fakeCaller{responses: map[string]string{"/api/menu/3/rate": `{"success":false}`}}
	ctx, _, _ := newTestContext(caller)

	err := (&RateMenuCmd{ID: "3", Stars: 4, Review: "tasty"}).Run(ctx)
	if err == nil || err.Error() != msgMenuRatingFailed {
		t.Fatalf("Run() error = %v", err)
	}
	if caller.calls[0].body != `{"rating":4,"review":"tasty"}` {
		t.Fatalf("body = %s", caller.calls[0].body)
	}
}

func TestRateRecipe(t *testing.T) {
	caller := &fakeCaller{}
	ctx, out, _ := newTestContext(caller)

	if err := (&RateRecipeCmd{ID: "9", Stars: 3}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if caller.calls[0].path != "/api/recipe/9/rate" || caller.calls[0].body != `{"rating":3}` {
		t.Fatalf("call = %+v", caller.calls[0])
	}
	if got := out.String(); got != "★★★☆☆ Rating submitted successfully!\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestGroupAddMember(t *testing.T) {
	caller := &fakeCaller{}
	ctx, out, _ := newTestContext(caller)

	if err := (&GroupAddMemberCmd{Group: "g1", Member: "1"}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if caller.calls[0].path != "/api/group/g1/member" || caller.calls[0].body != `{"member_id":"1"}` {
		t.Fatalf("call = %+v", caller.calls[0])
	}
	if got := out.String(); got != "Member added successfully!\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestGroupRemoveMemberFailure(t *testing.T) {
	ctx, _, _ := newTestContext(&fakeCaller{err: errors.New("boom")})

	err := (&GroupRemoveMemberCmd{Group: "g1", Member: "1"}).Run(ctx)
	if err == nil || err.Error() != "Failed to remove member." {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestGroupRouletteWithoutMatches(t *testing.T) {
	caller := &fakeCaller{responses: map[string]string{"/eat-together/g1/food-matches": `[]`}}
	ctx, _, _ := newTestContext(caller)

	err := (&GroupRouletteCmd{Group: "g1"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "no food matches") {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestGroupPrefsMergesSources(t *testing.T) {
	cmd := &GroupPrefsCmd{Group: "g1", JSON: `{"budget":"$$"}`, Set: map[string]string{"cuisine": "thai"}}
	prefs, err := cmd.preferences()
	if err != nil {
		t.Fatalf("preferences() error = %v", err)
	}
	if prefs["budget"] != "$$" || prefs["cuisine"] != "thai" {
		t.Fatalf("prefs = %v", prefs)
	}

	if _, err := (&GroupPrefsCmd{Group: "g1"}).preferences(); err == nil {
		t.Fatalf("preferences() expected error when empty")
	}
}

func TestMenuAddRejectsInvalidJSON(t *testing.T) {
	caller := &fakeCaller{}
	ctx, _, _ := newTestContext(caller)

	if err := (&MenuAddCmd{Item: "{nope"}).Run(ctx); err == nil {
		t.Fatalf("Run() expected error")
	}
	if len(caller.calls) != 0 {
		t.Fatalf("unexpected requests: %+v", caller.calls)
	}
}

func TestMenuList(t *testing.T) {
	caller := &fakeCaller{responses: map[string]string{"/api/menu": `{"message":"List of menu items"}`}}
	ctx, out, _ := newTestContext(caller)

	if err := (&MenuListCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "List of menu items\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestVersionJSON(t *testing.T) {
	ctx, out, _ := newTestContext(&fakeCaller{})
	ctx.Version = "1.0.0"
	ctx.JSONOutput = true

	if err := (&VersionCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "{\n  \"version\": \"1.0.0\"\n}\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestConfigShowResolvesFallbacks(t *testing.T) {
	ctx, out, _ := newTestContext(&fakeCaller{})
	ctx.Config.LogFile = "/tmp/eat.log"
	ctx.Config.RecipeDebounceMS = 250

	if err := (&ShowConfigCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"base_url         http://localhost:5000\n",
		"timeout          30s\n",
		"member_debounce  500ms\n",
		"recipe_debounce  250ms\n",
		"interactive_log  /tmp/eat.log\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "proxy") {
		t.Fatalf("empty proxy should be omitted:\n%s", got)
	}
}

func TestConfigShowJSON(t *testing.T) {
	ctx, out, _ := newTestContext(&fakeCaller{})
	ctx.JSONOutput = true
	ctx.Config.LogFile = "/tmp/eat.log"

	if err := (&ShowConfigCmd{}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["notice_lifetime"] != "5s" || got["interactive_log"] != "/tmp/eat.log" {
		t.Fatalf("settings = %v", got)
	}
}

func TestConfigPathFile(t *testing.T) {
	ctx, out, _ := newTestContext(&fakeCaller{})
	ctx.ConfigDir = filepath.Join("home", "eatcli")

	if err := (&PathConfigCmd{File: true}).Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got, want := out.String(), filepath.Join("home", "eatcli", "config.json")+"\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestConfigInitReportsExistingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, err := config.ConfigDir()
	if err != nil {
		t.Skipf("no config dir: %v", err)
	}
	ctx, out, _ := newTestContext(&fakeCaller{})
	ctx.ConfigDir = dir

	if err := (&InitConfigCmd{}).Run(ctx); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "Wrote defaults to ") {
		t.Fatalf("first output = %q", out.String())
	}
	out.Reset()
	if err := (&InitConfigCmd{}).Run(ctx); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if want := "Config already exists: " + filepath.Join(dir, "config.json") + "\n"; out.String() != want {
		t.Fatalf("second output = %q, want %q", out.String(), want)
	}
}
