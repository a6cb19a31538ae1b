package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// SecretPrompter は対話的に秘密情報の入力を求めるインターフェースです。
type SecretPrompter interface {
	// PromptSecret は入力を求めます。対話できない場合は空文字列を返します。
	PromptSecret(label string) (string, error)
}

// ResolveCredential はGeminiの認証情報を確定させます。
//
// 環境変数 → 対話入力の順に探し、どちらからも得られなければ ErrMissingCredential を返します。
// Vertex AI使用時はADCを使うためAPIキーは不要です。
func ResolveCredential(cfg *GeminiConfig, prompter SecretPrompter) error {
	if cfg.UseVertexAI {
		return nil
	}
	if usableKey(cfg.APIKey) {
		return nil
	}
	cfg.APIKey = ""

	if prompter != nil {
		key, err := prompter.PromptSecret("Google Gemini API Anahtarı: ")
		if err != nil {
			return fmt.Errorf("read api key: %w", err)
		}
		if usableKey(key) {
			cfg.APIKey = strings.TrimSpace(key)
			return nil
		}
	}
	return ErrMissingCredential
}

func usableKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != PlaceholderAPIKey
}

// TerminalPrompter は標準入力が端末の場合に入力を伏せ字で読み取ります。
type TerminalPrompter struct {
	In  *os.File
	Out io.Writer
}

// NewTerminalPrompter は標準入出力を使うTerminalPrompterを返します。
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{In: os.Stdin, Out: os.Stderr}
}

// PromptSecret は端末から1行読み取ります。端末でなければ何も読まずに空文字列を返します。
func (p *TerminalPrompter) PromptSecret(label string) (string, error) {
	fd := int(p.In.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}
	if _, err := fmt.Fprint(p.Out, label); err != nil {
		return "", err
	}
	b, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(p.Out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReaderPrompter は任意のReaderから1行読み取ります（パイプ入力やCLI用）。
type ReaderPrompter struct {
	R io.Reader
}

// PromptSecret はReaderから1行読み取ります。
func (p ReaderPrompter) PromptSecret(string) (string, error) {
	line, err := bufio.NewReader(p.R).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
