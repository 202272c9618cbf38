package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/idfinder-gh/idfinder/models"
)

const (
	createCard = `INSERT INTO cards (id, card_type, full_id, masked_public_id, first_name, last_name, date_of_birth, gender, image_url, holding_location_id, status, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING id, card_type, full_id, masked_public_id, first_name, last_name, date_of_birth, gender, image_url, holding_location_id, status, claimed_at, created_at;`

	getCardByID = `SELECT c.id, c.card_type, c.full_id, c.masked_public_id, c.first_name, c.last_name, c.date_of_birth, c.gender, c.image_url, c.holding_location_id, c.status, c.claimed_at, c.created_at,
        l.id, l.name, l.address, l.region, l.phone, l.hours, l.created_at
    FROM cards c
    JOIN locations l ON l.id = c.holding_location_id
    WHERE c.id = $1;`

	createClaim = `INSERT INTO claims (id, card_id, contact_email, contact_phone, reference_code, otp_code, otp_expires_at, status, notes, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id, card_id, contact_email, contact_phone, reference_code, otp_code, otp_expires_at, status, notes, handled_by_id, created_at;`

	getClaimByID = `SELECT cl.id, cl.card_id, cl.contact_email, cl.contact_phone, cl.reference_code, cl.otp_code, cl.otp_expires_at, cl.status, cl.notes, cl.handled_by_id, cl.created_at,
        c.id, c.card_type, c.full_id, c.masked_public_id, c.first_name, c.last_name, c.date_of_birth, c.gender, c.image_url, c.holding_location_id, c.status, c.claimed_at, c.created_at,
        l.id, l.name, l.address, l.region, l.phone, l.hours, l.created_at,
        u.id, u.name, u.email, u.role
    FROM claims cl
    JOIN cards c ON c.id = cl.card_id
    JOIN locations l ON l.id = c.holding_location_id
    LEFT JOIN users u ON u.id = cl.handled_by_id
    WHERE cl.id = $1;`

	// Collection runs inside one transaction: both rows are locked before
	// either is rewritten, so a concurrent collect observes CLAIMED and backs off.
	selectClaimForUpdate = `SELECT id, card_id, status
    FROM claims
    WHERE id = $1
    FOR UPDATE;`

	selectCardStatusForUpdate = `SELECT status
    FROM cards
    WHERE id = $1
    FOR UPDATE;`

	collectClaimUpdate = `UPDATE claims
    SET status = $1, notes = COALESCE($2, notes), handled_by_id = $3
    WHERE id = $4;`

	collectCardUpdate = `UPDATE cards
    SET status = $1, claimed_at = $2
    WHERE id = $3;`

	updateClaimStatus = `UPDATE claims
    SET status = $1, notes = COALESCE($2, notes)
    WHERE id = $3
    RETURNING id;`

	createLocation = `INSERT INTO locations (id, name, address, region, phone, hours, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, name, address, region, phone, hours, created_at;`

	listLocations = `SELECT id, name, address, region, phone, hours, created_at
    FROM locations
    ORDER BY name;`

	findLocationByName = `SELECT id, name, address, region, phone, hours, created_at
    FROM locations
    WHERE name = $1;`

	createUser = `INSERT INTO users (id, name, email, password_hash, role, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, name, email, password_hash, role, last_login, created_at;`

	findUserByEmail = `SELECT id, name, email, password_hash, role, last_login, created_at
    FROM users
    WHERE email = $1;`

	getUserByID = `SELECT id, name, email, password_hash, role, last_login, created_at
    FROM users
    WHERE id = $1;`

	recordLastLogin = `UPDATE users
    SET last_login = $1
    WHERE id = $2;`
)

// psql builds PostgreSQL-flavored queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// cardColumns are the card fields selected by every card read, in scan order.
var cardColumns = []string{
	"c.id", "c.card_type", "c.full_id", "c.masked_public_id",
	"c.first_name", "c.last_name", "c.date_of_birth", "c.gender",
	"c.image_url", "c.holding_location_id", "c.status", "c.claimed_at",
	"c.created_at",
}

// locationColumns are the location fields joined onto card reads, in scan order.
var locationColumns = []string{
	"l.id", "l.name", "l.address", "l.region", "l.phone", "l.hours", "l.created_at",
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied search text.
// Without it a searcher could type "%" and match every row the other
// filters allow.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func cardSelect() sq.SelectBuilder {
	cols := append(append([]string{}, cardColumns...), locationColumns...)
	return psql.Select(cols...).
		From("cards c").
		Join("locations l ON l.id = c.holding_location_id")
}

// buildSearchByIDQuery builds the public by-id lookup: same document type,
// and either the exact raw identifier or a masked-id fragment. Only cards
// still awaiting collection are returned.
func buildSearchByIDQuery(q models.SearchByIDQuery) (string, []any, error) {
	return cardSelect().
		Where(sq.Eq{"c.card_type": q.CardType}).
		Where(sq.Or{
			sq.Eq{"c.full_id": q.IDNumber},
			sq.Like{"c.masked_public_id": "%" + likeEscaper.Replace(q.IDNumber) + "%"},
		}).
		Where(sq.Eq{"c.status": models.CardStatusAvailable}).
		OrderBy("c.created_at DESC").
		Limit(models.SearchByIDLimit).
		ToSql()
}

// buildSearchByPersonQuery builds the public by-person lookup. The last name
// matches anywhere in the stored value, the first name matches as a prefix,
// and the date of birth must fall inside [from, to]. Both names are required
// and validated upstream, so no filter is optional here.
func buildSearchByPersonQuery(q models.SearchByPersonQuery, from, to time.Time) (string, []any, error) {
	b := cardSelect().
		Where(sq.Like{"c.first_name": likeEscaper.Replace(q.FirstName) + "%"}).
		Where(sq.Like{"c.last_name": "%" + likeEscaper.Replace(q.LastName) + "%"}).
		Where(sq.GtOrEq{"c.date_of_birth": from}).
		Where(sq.LtOrEq{"c.date_of_birth": to}).
		Where(sq.Eq{"c.status": models.CardStatusAvailable})

	return b.OrderBy("c.created_at DESC").
		Limit(models.SearchByPersonLimit).
		ToSql()
}

// buildCardListQuery builds the staff card listing with optional status and
// type filters plus pagination. Newest intake first.
func buildCardListQuery(opts models.CardListOptions) (string, []any, error) {
	b := cardSelect()
	b = applyCardFilters(b, opts)

	page := opts.Page.Normalize()
	return b.OrderBy("c.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

// buildCardCountQuery counts the rows the matching list query would return
// before pagination.
func buildCardCountQuery(opts models.CardListOptions) (string, []any, error) {
	b := psql.Select("COUNT(*)").From("cards c")
	b = applyCardFilters(b, opts)
	return b.ToSql()
}

func applyCardFilters(b sq.SelectBuilder, opts models.CardListOptions) sq.SelectBuilder {
	if opts.Status != "" {
		b = b.Where(sq.Eq{"c.status": opts.Status})
	}
	if opts.CardType != "" {
		b = b.Where(sq.Eq{"c.card_type": opts.CardType})
	}
	return b
}

// claimColumns are the claim fields selected by the claim listing, in scan order.
var claimColumns = []string{
	"cl.id", "cl.card_id", "cl.contact_email", "cl.contact_phone",
	"cl.reference_code", "cl.otp_code", "cl.otp_expires_at", "cl.status",
	"cl.notes", "cl.handled_by_id", "cl.created_at",
}

// handlerColumns are the handling-user fields joined onto claim reads, in
// scan order. The join is a LEFT JOIN, so all of them scan as nullable.
var handlerColumns = []string{
	"u.id", "u.name", "u.email", "u.role",
}

// buildClaimListQuery builds the staff claim listing joined with the claimed
// card and the staff member who handled it, so staff see what each claim is
// about and who decided it without a second read.
func buildClaimListQuery(opts models.ClaimListOptions) (string, []any, error) {
	cols := append(append([]string{}, claimColumns...), cardColumns...)
	cols = append(cols, locationColumns...)
	cols = append(cols, handlerColumns...)

	b := psql.Select(cols...).
		From("claims cl").
		Join("cards c ON c.id = cl.card_id").
		Join("locations l ON l.id = c.holding_location_id").
		LeftJoin("users u ON u.id = cl.handled_by_id")
	b = applyClaimFilters(b, opts)

	page := opts.Page.Normalize()
	return b.OrderBy("cl.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
}

// buildClaimCountQuery counts the rows the matching list query would return
// before pagination.
func buildClaimCountQuery(opts models.ClaimListOptions) (string, []any, error) {
	b := psql.Select("COUNT(*)").From("claims cl")
	b = applyClaimFilters(b, opts)
	return b.ToSql()
}

func applyClaimFilters(b sq.SelectBuilder, opts models.ClaimListOptions) sq.SelectBuilder {
	if opts.Status != "" {
		b = b.Where(sq.Eq{"cl.status": opts.Status})
	}
	return b
}

// buildCardUpdateQuery builds a partial UPDATE from the non-nil fields of
// update. Moving a card to CLAIMED stamps claimed_at with now; moving it
// back to AVAILABLE clears the stamp so the pair stays consistent.
func buildCardUpdateQuery(id string, update models.CardUpdate, now time.Time) (string, []any, error) {
	b := psql.Update("cards")

	if update.Status != nil {
		b = b.Set("status", *update.Status)
		switch *update.Status {
		case models.CardStatusClaimed:
			b = b.Set("claimed_at", now)
		case models.CardStatusAvailable:
			b = b.Set("claimed_at", nil)
		}
	}
	if update.FirstName != nil {
		b = b.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		b = b.Set("last_name", *update.LastName)
	}
	if update.DateOfBirth != nil {
		b = b.Set("date_of_birth", *update.DateOfBirth)
	}
	if update.Gender != nil {
		b = b.Set("gender", *update.Gender)
	}
	if update.ImageURL != nil {
		b = b.Set("image_url", *update.ImageURL)
	}
	if update.HoldingLocationID != nil {
		b = b.Set("holding_location_id", *update.HoldingLocationID)
	}

	return b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
}
