package cmd

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type testArgs struct {
	input   string
	support float64
	workers int
	verify  bool
}

func newTestContainer(args *testArgs) *FlagContainer {
	positive := func(valueToCheck int) error {
		if valueToCheck < 1 {
			return errors.New("must be positive")
		}
		return nil
	}
	container := NewFlagContainer()
	So(container.AddFlags(
		&Flag{Name: "input", Aliases: []string{"i"}, Usage: "--input <path>", Required: true, FlagValue: NewStringValue(&args.input, nil)},
		&Flag{Name: "support", Usage: "--support <f>", FlagValue: NewFloat64Value(&args.support, nil)},
		&Flag{Name: "workers", Usage: "--workers <n>", FlagValue: NewIntValue(&args.workers, positive)},
		&Flag{Name: "verify", Usage: "--verify", FlagValue: NewNoArgBoolValue(&args.verify)},
	), ShouldBeNil)
	return container
}

func TestFlagContainer(t *testing.T) {
	Convey("FlagContainer", t, func() {
		args := &testArgs{support: 0.01, workers: 1}
		container := newTestContainer(args)

		Convey("parses values by name and alias", func() {
			err := container.Parse([]string{"--i", "sales.csv", "--support", "0.2", "--verify", "--workers", "4"})
			So(err, ShouldBeNil)
			So(args.input, ShouldEqual, "sales.csv")
			So(args.support, ShouldAlmostEqual, 0.2)
			So(args.workers, ShouldEqual, 4)
			So(args.verify, ShouldBeTrue)
		})

		Convey("unset flags keep their defaults", func() {
			So(container.Parse([]string{"--input", "a.csv"}), ShouldBeNil)
			So(args.support, ShouldAlmostEqual, 0.01)
			So(args.workers, ShouldEqual, 1)
			So(args.verify, ShouldBeFalse)
		})

		Convey("negative numbers are values, not flags", func() {
			err := container.Parse([]string{"--input", "a.csv", "--support", "-0.5"})
			So(err, ShouldBeNil)
			So(args.support, ShouldAlmostEqual, -0.5)
		})

		Convey("a missing required flag is an error", func() {
			err := container.Parse([]string{"--support", "0.2"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "--input <path>")
		})

		Convey("bad input is reported", func() {
			So(container.Parse([]string{"input", "a.csv"}), ShouldNotBeNil)
			So(container.Parse([]string{"--input", "a.csv", "--unknown", "1"}), ShouldNotBeNil)
			So(container.Parse([]string{"--input", "a.csv", "--i", "b.csv"}).Error(), ShouldContainSubstring, "duplicated")
			So(container.Parse([]string{"--input", "a.csv", "--workers", "x"}), ShouldNotBeNil)
			So(container.Parse([]string{"--input", "a.csv", "--workers", "0"}).Error(), ShouldContainSubstring, "validate failed")
			So(container.Parse([]string{"--input", "a.csv", "--workers"}), ShouldNotBeNil)
			So(container.Parse([]string{"--input", "a.csv", "--verify", "yes"}), ShouldNotBeNil)
			So(container.Parse([]string{"--input", "a.csv", "b.csv"}), ShouldNotBeNil)
		})

		Convey("names and aliases are unique", func() {
			var other string
			err := container.AddFlags(&Flag{Name: "x", Aliases: []string{"input"}, FlagValue: NewStringValue(&other, nil)})
			So(err, ShouldNotBeNil)
			err = container.AddFlags(&Flag{Name: "i", FlagValue: NewStringValue(&other, nil)})
			So(err, ShouldNotBeNil)
			So(len(container.GetFlags()), ShouldEqual, 4)
		})

		Convey("String lists flags by name", func() {
			So(container.Parse([]string{"--input", "a.csv"}), ShouldBeNil)
			So(container.String(), ShouldEqual, "--input:a.csv\n--support:0.01\n--verify:false\n--workers:1\n")
		})
	})
}
