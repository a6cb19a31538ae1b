// Command signalctl はチャート画像ファイルに対してシグナル生成パイプラインを1回実行します。
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "signalctl",
		Short:         "AI destekli borsa sinyal analizi",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newAnalyzeCmd())
	return root
}
