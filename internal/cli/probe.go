package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/megalamo/iconsync/internal/logging"
	"github.com/megalamo/iconsync/internal/probe"
	"github.com/megalamo/iconsync/pkg/iconsync"
)

var probeCmd = &cobra.Command{
	Use:   "probe [SIZE]",
	Short: "Check whether the image host accepts a thumbnail resize parameter",
	Long: `Probe issues a HEAD request for a known profile image under the candidate
c/<SIZE> path segment of the pximg host. A bare number is expanded to a
square (540 becomes 540x540); the default is ` + iconsync.DefaultProbeSize + `.

The accepted size is printed to stdout, making the command usable in
substitutions:

  iconsync probe 540
  iconsync probe 600x300`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	size := iconsync.DefaultProbeSize
	if len(args) == 1 {
		size = args[0]
	}
	size = probe.NormalizeSize(size)
	logger.Verbose("probing resize parameter %s", size)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ok, err := probe.New().Try(ctx, size)
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("Resize parameter %s was rejected by the host.", size)
		return nil
	}

	fmt.Println(size)
	return nil
}
