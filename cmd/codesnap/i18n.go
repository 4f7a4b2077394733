// Package main provides localization for the codesnap CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input and Output": "入出力",
		"Rendering":        "レンダリング",
		"Debug":            "デバッグ",
		"Logging":          "ログ",

		// Root command
		"Render syntax-highlighted code as a PNG image": "シンタックスハイライトされたコードをPNG画像として描画",

		// Input and output flags
		"Read the JSON document from a file instead of stdin": "標準入力の代わりにファイルからJSONドキュメントを読み込む",
		"Output PNG path (overrides output_path)":             "出力PNGのパス (output_path より優先)",
		"Directory for timestamped snapshots":                 "タイムスタンプ付きスナップショットの保存先",
		"YAML defaults file":                                  "デフォルト値を記述したYAMLファイル",
		"Do not copy the image to the clipboard":              "画像をクリップボードにコピーしない",

		// Rendering flags
		"TTF or OTF monospace font file":                   "TTF または OTF の等幅フォントファイル",
		"Render scale (default: 2)":                        "描画倍率 (デフォルト: 2)",
		"Show line numbers":                                "行番号を表示",
		"First line number":                                "最初の行番号",
		"Draw span backgrounds, underlines and bold text":  "スパンの背景、下線、太字を描画",
		"Disable the drop shadow":                          "ドロップシャドウを無効化",
		"Number of blur workers (default: number of CPUs)": "ぼかし処理のワーカー数 (デフォルト: CPU数)",

		// Debug and logging flags
		"Save intermediate images":             "中間画像を保存",
		"Directory for debug output":           "デバッグ出力ディレクトリ",
		"Log level (debug, info, warn, error)": "ログレベル (debug, info, warn, error)",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Errors
		"Error: %s": "エラー: %s",
	})
}
