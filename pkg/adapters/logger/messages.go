package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Rendering %d lines":                    "%d 行をレンダリング中",
		"Rendered %dx%d image":                  "%dx%d の画像をレンダリングしました",
		"Output saved to %s":                    "出力を %s に保存しました",
		"Copied image to clipboard":             "画像をクリップボードにコピーしました",
		"Could not copy image to clipboard: %s": "画像をクリップボードにコピーできませんでした: %s",
		"Failed to remove partial file %s: %s":  "書きかけのファイル %s を削除できませんでした: %s",
		"Failed to save debug output: %s":       "デバッグ出力の保存に失敗しました: %s",
		"Loading config from %s":                "%s から設定を読み込み中",
		"Interrupted, shutting down...":         "中断されました。シャットダウン中...",

		// Layout stage
		"Computing layout for %d lines":          "%d 行のレイアウトを計算中",
		"Layout computed: %dx%d card, gutter %d": "レイアウト計算完了: %dx%d カード, ガター %d",

		// Card stage
		"Rendering %d lines on %dx%d canvas": "%d 行を %dx%d キャンバスに描画中",
		"Card rendered":                      "カードを描画しました",

		// Corners stage
		"Rounding corners with radius %d": "半径 %d で角を丸めています",

		// Shadow stage
		"Framing card with %d px margin":                        "%d px の余白でカードを配置中",
		"Compositing shadow: sigma %.1f, margin %d, %d workers": "影を合成中: シグマ %.1f, 余白 %d, ワーカー %d",
	})
}
