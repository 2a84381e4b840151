package db_test

import (
	"context"
	"database/sql"
	"paygate/internal/db"
	"paygate/internal/repository"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID     uint `gorm:"primaryKey"`
	TxHash string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "verification_records" WHERE tx_hash = \$1 ORDER BY "verification_records"\."tx_hash" LIMIT \$2.*`).
					WithArgs("0xabc", 1).
					WillReturnRows(sqlmock.NewRows([]string{"tx_hash", "chain", "amount_raw", "sender", "verified_at"}).
						AddRow("0xabc", "evm", "10000000000000", "0xsender", time.Now().UTC()))
			})

			It("should return the correct record", func() {
				var result repository.VerificationRecord
				err := testDB.GetOneBy(context.Background(), "tx_hash", "0xabc", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.TxHash).To(Equal("0xabc"))
				Expect(result.Chain).To(Equal("evm"))
				Expect(result.AmountRaw).To(Equal("10000000000000"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "verification_records" WHERE tx_hash = \$1 ORDER BY "verification_records"\."tx_hash" LIMIT \$2.*`).
					WithArgs("0xghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return a not found error", func() {
				var result repository.VerificationRecord
				err := testDB.GetOneBy(context.Background(), "tx_hash", "0xghost", &result)
				Expect(err).To(MatchError(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("InsertIfAbsent", func() {
		var record repository.VerificationRecord

		BeforeEach(func() {
			record = repository.VerificationRecord{
				TxHash:     "0xabc",
				Chain:      "evm",
				AmountRaw:  "10000000000000",
				Sender:     "0xsender",
				VerifiedAt: time.Now().UTC(),
			}
		})

		When("the record is new", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^INSERT INTO "verification_records" \("tx_hash","chain","amount_raw","sender","verified_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \("tx_hash"\) DO NOTHING$`).
					WithArgs("0xabc", "evm", "10000000000000", "0xsender", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))

				mock.ExpectCommit()
			})

			It("should report an insert", func() {
				inserted, err := testDB.InsertIfAbsent(context.Background(), "tx_hash", &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the record already exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^INSERT INTO "verification_records" \("tx_hash","chain","amount_raw","sender","verified_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5\) ON CONFLICT \("tx_hash"\) DO NOTHING$`).
					WithArgs("0xabc", "evm", "10000000000000", "0xsender", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectCommit()
			})

			It("should report no insert", func() {
				inserted, err := testDB.InsertIfAbsent(context.Background(), "tx_hash", &record)
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
