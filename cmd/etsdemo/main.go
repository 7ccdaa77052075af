// Package main contains a command to print the pose and Jacobian of example transform
// sequences at a supplied configuration.
package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/ets"
	"go.viam.com/ets/kinematics"
	"go.viam.com/ets/spatialmath"
)

var logger = golog.NewDevelopmentLogger("etsdemo")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

// Arguments for the command.
type Arguments struct {
	Config  string `flag:"q,usage=comma-separated joint configuration"`
	Degrees bool   `flag:"degrees,usage=treat rotation inputs as degrees"`
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	q, err := parseConfig(argsParsed.Config)
	if err != nil {
		return err
	}
	return describeTwoLink(q, argsParsed.Degrees, logger)
}

func parseConfig(s string) ([]float64, error) {
	if s == "" {
		return []float64{0, 0}, nil
	}
	var q []float64
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		q = append(q, v)
	}
	return q, nil
}

// describeTwoLink logs everything the introspection and evaluation surfaces expose for
// a planar two-link arm with unit link lengths.
func describeTwoLink(q []float64, degrees bool, logger golog.Logger) error {
	j1, err := ets.Rotation("z", "q1")
	if err != nil {
		return err
	}
	j2, err := ets.Rotation("z", "q2")
	if err != nil {
		return err
	}
	link, err := ets.Translation("x", 1.0)
	if err != nil {
		return err
	}
	seq, err := ets.NewSequence(spatialmath.Planar, j1, link, j2, link)
	if err != nil {
		return err
	}

	logger.Infow("chain", "ets", seq.String(), "symbolic", seq.SymbolicString())
	logger.Infow("structure", "signature", seq.Structure(), "njoints", seq.NJoints())

	var opts []kinematics.EvalOption
	if degrees {
		opts = append(opts, kinematics.WithDegrees())
	}
	pose, err := kinematics.Transform(seq, q, opts...)
	if err != nil {
		return err
	}
	logger.Infow("tip pose", "point", pose.Point(), "theta", pose.Theta())

	for prefix := 1; prefix <= seq.Len(); prefix++ {
		partial, err := kinematics.Transform(seq, q, append(opts, kinematics.WithPrefix(prefix))...)
		if err != nil {
			return err
		}
		logger.Infow("partial pose", "prefix", prefix, "point", partial.Point())
	}

	if degrees {
		// The Jacobian is radian-based; skip it rather than mislabel the columns.
		return nil
	}
	jac, err := kinematics.Jacobian(seq, q)
	if err != nil {
		return err
	}
	logger.Infof("jacobian:\n%v", mat.Formatted(jac))
	return nil
}
