package seed

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/astrolabs/skywatch/internal/app/models"
	"github.com/astrolabs/skywatch/internal/pkg/dberrors"
)

// CreateDemoCatalog inserts a small demo catalog so a fresh development
// database answers queries. Objects that already exist are left untouched.
func CreateDemoCatalog(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo catalog data...")
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	var finalErr error

	objects := []models.Object{
		{OID: "ZTF18aaabcde", Ndet: 12, MeanRA: 120.51234, MeanDec: -33.20412,
			SigmaRA: 0.00012, SigmaDec: 0.00009, DeltaJD: 42.31,
			FirstMJD: 58200.21, LastMJD: 58242.52},
		{OID: "ZTF19aabbccd", Ndet: 3, MeanRA: 251.90233, MeanDec: 12.33410,
			SigmaRA: 0.00031, SigmaDec: 0.00027, DeltaJD: 4.05,
			FirstMJD: 58510.33, LastMJD: 58514.38},
		{OID: "ZTF20aabbxyz", Ndet: 27, MeanRA: 17.44120, MeanDec: 48.00933,
			SigmaRA: 0.00008, SigmaDec: 0.00011, DeltaJD: 133.90,
			FirstMJD: 58900.11, LastMJD: 59034.01},
	}

	for _, obj := range objects {
		sql, args, err := sb.Insert("objects").
			Columns("oid", "ndet", "meanra", "meandec", "sigmara", "sigmadec",
				"deltajd", "firstmjd", "lastmjd").
			Values(obj.OID, obj.Ndet, obj.MeanRA, obj.MeanDec, obj.SigmaRA,
				obj.SigmaDec, obj.DeltaJD, obj.FirstMJD, obj.LastMJD).
			ToSql()
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := dbPool.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsUniqueViolation(err) {
				continue
			}
			lgr.Error().Err(err).Str("oid", obj.OID).Msg("Error seeding demo object")
			finalErr = errors.Join(finalErr, err)
		}
	}

	classifications := []models.Classification{
		{OID: "ZTF18aaabcde", ClassifierName: "lc_classifier", ClassName: "SNIa", Probability: 0.87},
		{OID: "ZTF18aaabcde", ClassifierName: "stamp_classifier", ClassName: "SN", Probability: 0.91},
		{OID: "ZTF20aabbxyz", ClassifierName: "lc_classifier", ClassName: "RRL", Probability: 0.95},
	}

	for _, clf := range classifications {
		sql, args, err := sb.Insert("classifications").
			Columns("oid", "classifier_name", "class_name", "probability").
			Values(clf.OID, clf.ClassifierName, clf.ClassName, clf.Probability).
			ToSql()
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := dbPool.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsUniqueViolation(err) {
				continue
			}
			lgr.Error().Err(err).Str("oid", clf.OID).Msg("Error seeding demo classification")
			finalErr = errors.Join(finalErr, err)
		}
	}

	detections := []models.Detection{
		{Candid: 1000151433015015000, OID: "ZTF18aaabcde", MJD: 58200.21, FID: 1,
			RA: 120.51230, Dec: -33.20410, MagPSF: 18.93, SigmaPSF: 0.07, RB: 0.88},
		{Candid: 1000151433015015001, OID: "ZTF18aaabcde", MJD: 58203.25, FID: 2,
			RA: 120.51237, Dec: -33.20415, MagPSF: 18.41, SigmaPSF: 0.05, RB: 0.92},
		{Candid: 1120331433015015002, OID: "ZTF20aabbxyz", MJD: 58900.11, FID: 1,
			RA: 17.44118, Dec: 48.00931, MagPSF: 16.72, SigmaPSF: 0.03, RB: 0.97},
	}

	for _, det := range detections {
		sql, args, err := sb.Insert("detections").
			Columns("candid", "oid", "mjd", "fid", "ra", "dec", "magpsf", "sigmapsf", "rb").
			Values(det.Candid, det.OID, det.MJD, det.FID, det.RA, det.Dec,
				det.MagPSF, det.SigmaPSF, det.RB).
			ToSql()
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := dbPool.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsUniqueViolation(err) {
				continue
			}
			lgr.Error().Err(err).Str("oid", det.OID).Msg("Error seeding demo detection")
			finalErr = errors.Join(finalErr, err)
		}
	}

	nonDetections := []models.NonDetection{
		{OID: "ZTF18aaabcde", MJD: 58198.19, FID: 1, DiffMagLim: 20.21},
		{OID: "ZTF18aaabcde", MJD: 58199.22, FID: 2, DiffMagLim: 20.54},
	}

	for _, nd := range nonDetections {
		sql, args, err := sb.Insert("non_detections").
			Columns("oid", "mjd", "fid", "diffmaglim").
			Values(nd.OID, nd.MJD, nd.FID, nd.DiffMagLim).
			ToSql()
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if _, err := dbPool.Exec(ctx, sql, args...); err != nil {
			if dberrors.IsUniqueViolation(err) {
				continue
			}
			lgr.Error().Err(err).Str("oid", nd.OID).Msg("Error seeding demo non-detection")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo catalog data ready.")
	}
	return finalErr
}
