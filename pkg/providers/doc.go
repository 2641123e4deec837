// Package providers groups concrete LLM provider clients. Each provider
// lives in its own sub-package and embeds
// [github.com/termai-cli/termai/pkg/modeladapter.Adapter] for the shared
// HTTP plumbing. Only the Gemini provider exists today.
package providers
