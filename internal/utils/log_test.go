package utils

import (
	"bytes"
	"log"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Log", func() {
	var (
		logBuf            *bytes.Buffer
		initialTimeFormat string
	)

	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		DefaultLogger.SetLogLevel(LogLevelNothing)
		log.SetOutput(logBuf)
		initialTimeFormat = DefaultLogger.(*defaultLogger).timeFormat
	})

	AfterEach(func() {
		DefaultLogger.SetLogLevel(LogLevelNothing)
		DefaultLogger.SetLogTimeFormat(initialTimeFormat)
		log.SetOutput(os.Stdout)
	})

	It("the log level has the correct numeric value", func() {
		Expect(LogLevelNothing).To(BeEquivalentTo(0))
		Expect(LogLevelError).To(BeEquivalentTo(1))
		Expect(LogLevelInfo).To(BeEquivalentTo(2))
		Expect(LogLevelDebug).To(BeEquivalentTo(3))
	})

	It("log level nothing", func() {
		DefaultLogger.SetLogLevel(LogLevelNothing)
		DefaultLogger.Debugf("debug")
		DefaultLogger.Infof("info")
		DefaultLogger.Errorf("err")
		Expect(logBuf.String()).To(BeEmpty())
	})

	It("log level err", func() {
		DefaultLogger.SetLogLevel(LogLevelError)
		DefaultLogger.Debugf("debug")
		DefaultLogger.Infof("info")
		DefaultLogger.Errorf("err")
		Expect(logBuf.String()).To(ContainSubstring("err\n"))
		Expect(logBuf.String()).ToNot(ContainSubstring("info"))
		Expect(logBuf.String()).ToNot(ContainSubstring("debug"))
	})

	It("log level info", func() {
		DefaultLogger.SetLogLevel(LogLevelInfo)
		DefaultLogger.Debugf("debug")
		DefaultLogger.Infof("info")
		DefaultLogger.Errorf("err")
		Expect(logBuf.String()).To(ContainSubstring("err\n"))
		Expect(logBuf.String()).To(ContainSubstring("info\n"))
		Expect(logBuf.String()).ToNot(ContainSubstring("debug"))
	})

	It("log level debug", func() {
		DefaultLogger.SetLogLevel(LogLevelDebug)
		DefaultLogger.Debugf("debug")
		DefaultLogger.Infof("info")
		DefaultLogger.Errorf("err")
		Expect(logBuf.String()).To(ContainSubstring("err\n"))
		Expect(logBuf.String()).To(ContainSubstring("info\n"))
		Expect(logBuf.String()).To(ContainSubstring("debug\n"))
		Expect(DefaultLogger.Debug()).To(BeTrue())
	})

	It("adds a prefix", func() {
		DefaultLogger.SetLogLevel(LogLevelDebug)
		prefixLogger := DefaultLogger.WithPrefix("prefix")
		prefixLogger.Debugf("debug")
		Expect(logBuf.String()).To(ContainSubstring("prefix"))
	})

	It("adds multiple prefixes", func() {
		DefaultLogger.SetLogLevel(LogLevelDebug)
		prefixLogger := DefaultLogger.WithPrefix("prefix1")
		prefixPrefixLogger := prefixLogger.WithPrefix("prefix2")
		prefixPrefixLogger.Debugf("debug")
		Expect(logBuf.String()).To(ContainSubstring("prefix1 prefix2"))
	})

	It("says whether debug is enabled", func() {
		Expect(DefaultLogger.Debug()).To(BeFalse())
		DefaultLogger.SetLogLevel(LogLevelDebug)
		Expect(DefaultLogger.Debug()).To(BeTrue())
	})

	It("reads the log level from the environment", func() {
		testLevel := func(env string, expected LogLevel) {
			os.Setenv(logEnv, env)
			defer os.Unsetenv(logEnv)
			Expect(readLoggingEnv()).To(Equal(expected))
		}
		testLevel("DEBUG", LogLevelDebug)
		testLevel("INFO", LogLevelInfo)
		testLevel("ERROR", LogLevelError)
		testLevel("2", LogLevelInfo)
		testLevel("unknown", LogLevelNothing)
	})
})
