package program

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"
)

// mainErrorLogger captures errors returned by the routines launched by
// RunMain(). The first error causes the program to shut down with a
// non-zero exit code.
type mainErrorLogger struct {
	shutdownOnce sync.Once
	shutdown     func()
	cancel       context.CancelFunc
}

func (el *mainErrorLogger) Log(err error) {
	log.Print("Fatal error: ", err)
	el.startShutdown(func() {
		os.Exit(1)
	})
}

func (el *mainErrorLogger) startShutdown(shutdown func()) {
	el.shutdownOnce.Do(func() {
		el.shutdown = shutdown
		el.cancel()
	})
}

var terminationSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// exitWithSignal terminates the process by raising the signal that
// caused the shutdown once more, with the signal handler removed. This
// lets the parent process observe the original cause of termination.
func exitWithSignal(terminationSignal os.Signal) {
	if runtime.GOOS == "windows" {
		// Signals cannot be raised on Windows.
		os.Exit(1)
	}
	signal.Reset(terminationSignal)
	process, err := os.FindProcess(os.Getpid())
	if err != nil {
		panic(err)
	}
	if err := process.Signal(terminationSignal); err != nil {
		panic(err)
	}

	// Delivery may be asynchronous, or the signal may be ignored by
	// the process group. Exit explicitly if it hasn't arrived.
	time.Sleep(time.Second)
	os.Exit(1)
}

// RunMain runs the main routine of a program, and any routines that
// it launches. The program terminates when one of the following
// occurs:
//
//   - All routines have completed. The program exits with code 0.
//
//   - A routine returns an error. The error is logged, all routines
//     are canceled, and the program exits with code 1.
//
//   - SIGINT or SIGTERM is received. All routines are canceled, after
//     which the program terminates with the same signal.
//
// Routines are canceled in order of dependency, meaning that a
// dependency is only canceled after all routines depending on it have
// completed.
func RunMain(routine Routine) {
	ctx, cancel := context.WithCancel(context.Background())
	errorLogger := &mainErrorLogger{
		cancel: cancel,
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, terminationSignals...)
	go func() {
		receivedSignal := <-signalChan
		log.Printf("Received %#v signal. Initiating graceful shutdown.", receivedSignal.String())
		errorLogger.startShutdown(func() {
			exitWithSignal(receivedSignal)
		})
	}()

	run(ctx, errorLogger, routine)

	errorLogger.startShutdown(func() {
		os.Exit(0)
	})
	errorLogger.shutdown()
}
