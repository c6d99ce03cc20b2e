package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations builds a bundle from the embedded English defaults plus
// any locales/active.*.toml files found under localesPath.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("default language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Generate pull request descriptions with AI"

	[app_description]
	other = "descmate collects the changed files of a pull request, asks an LLM provider for a summary, and merges it into the PR description without touching the rest of the text"

	[describe.command_usage]
	other = "Generate and publish an AI summary for a pull request"

	[describe.pr_number_usage]
	other = "Pull request number (defaults to the number in the CI event payload)"

	[describe.repo_usage]
	other = "Repository in owner/repo form (defaults to GITHUB_REPOSITORY)"

	[describe.provider_usage]
	other = "AI provider to use (openai or anthropic)"

	[describe.model_usage]
	other = "Model identifier to request from the provider"

	[describe.hint_usage]
	other = "Extra context to steer the generated summary"

	[describe.dry_run_usage]
	other = "Print the merged description without updating the pull request"

	[describe.generating]
	other = "Generating description for PR #{{.Number}}..."

	[describe.section_appended]
	other = "No previous AI section found, appending a new one"

	[describe.section_replaced]
	other = "Replacing the previous AI section"

	[describe.success]
	other = "PR #{{.Number}} description updated ({{.Length}} characters)"

	[describe.dry_run_header]
	other = "Merged description (dry run, nothing was written):"

	[warning.update_status]
	other = "The host answered with status {{.Status}} on the final write; the update may not have been applied"

	[error.service_creation]
	other = "could not initialize the describe service"

	[error.describe_failed]
	other = "failed to generate the PR description"

	[ui_error.try_suggestion]
	other = "💡 Try: "
	`
