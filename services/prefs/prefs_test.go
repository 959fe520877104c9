package prefs

import (
	"context"
	"testing"

	"shalfa/i18n"
	"shalfa/models"
)

func TestGetUnknownClientReturnsDefaults(t *testing.T) {
	svc := &DefaultService{Store: NewMemoryStore()}

	p, err := svc.Get(context.Background(), "new-client")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p != models.DefaultPreferences() {
		t.Errorf("got %+v, want defaults", p)
	}
	if p.Language != i18n.Portuguese || p.Theme != models.ThemeLight || p.TooltipDismissed {
		t.Errorf("unexpected defaults: %+v", p)
	}
}

func TestUpdatePersists(t *testing.T) {
	svc := &DefaultService{Store: NewMemoryStore()}
	ctx := context.Background()

	lang := i18n.English
	theme := models.ThemeDark
	p, err := svc.Update(ctx, "c1", Update{Language: &lang, Theme: &theme})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Language != i18n.English || p.Theme != models.ThemeDark {
		t.Errorf("got %+v", p)
	}

	p, err = svc.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Language != i18n.English || p.Theme != models.ThemeDark {
		t.Errorf("settings did not persist: %+v", p)
	}
}

func TestUpdateIgnoresInvalidValues(t *testing.T) {
	svc := &DefaultService{Store: NewMemoryStore()}
	ctx := context.Background()

	lang := i18n.Language("fr")
	theme := models.Theme("sepia")
	p, err := svc.Update(ctx, "c1", Update{Language: &lang, Theme: &theme})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Language != i18n.Portuguese || p.Theme != models.ThemeLight {
		t.Errorf("invalid values were applied: %+v", p)
	}
}

func TestTooltipDismissalIsOneWay(t *testing.T) {
	svc := &DefaultService{Store: NewMemoryStore()}
	ctx := context.Background()

	dismissed := true
	p, err := svc.Update(ctx, "c1", Update{TooltipDismissed: &dismissed})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !p.TooltipDismissed {
		t.Fatal("dismissal not recorded")
	}

	undo := false
	p, err = svc.Update(ctx, "c1", Update{TooltipDismissed: &undo})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !p.TooltipDismissed {
		t.Error("dismissal must not be cleared")
	}
}

func TestClientsAreIsolated(t *testing.T) {
	svc := &DefaultService{Store: NewMemoryStore()}
	ctx := context.Background()

	lang := i18n.Spanish
	if _, err := svc.Update(ctx, "c1", Update{Language: &lang}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	p, err := svc.Get(ctx, "c2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Language != i18n.Portuguese {
		t.Errorf("c2 language = %q, want default", p.Language)
	}
}
