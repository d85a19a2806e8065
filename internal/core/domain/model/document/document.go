package document

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrDocumentIsNotConstructed is returned by Validate on a zero-value Document.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument or RestoreDocument")

// Links are the optional task and route a document is attached to.
type Links struct {
	TaskID  *kernel.UUID
	RouteID *kernel.UUID
}

// Document is an uploaded file reference scoped to a company.
// accessUserID is an explicit read grant for one user.
type Document struct {
	kernel.Versioned

	id           kernel.UUID
	title        string
	fileRef      string
	category     Category
	uploaderID   kernel.UUID
	companyID    kernel.UUID
	links        Links
	accessUserID *kernel.UUID
	createdAt    time.Time

	isConstructed bool
}

// NewDocument creates a document. fileRef is an opaque storage key.
func NewDocument(
	id kernel.UUID,
	title, fileRef string,
	category Category,
	uploaderID, companyID kernel.UUID,
	links Links,
	now time.Time,
) (*Document, error) {
	d := &Document{createdAt: now, links: copyLinks(links), isConstructed: true}

	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	d.id = id
	if err := d.setTitle(title); err != nil {
		errList = append(errList, err)
	}
	d.fileRef = strings.TrimSpace(fileRef)
	if d.fileRef == "" {
		errList = append(errList, errs.NewValueIsRequiredError("file reference"))
	}
	if err := category.Validate(); err != nil {
		errList = append(errList, err)
	}
	d.category = category
	if err := uploaderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("uploader id", err))
	}
	d.uploaderID = uploaderID
	if err := companyID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("company id", err))
	}
	d.companyID = companyID

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return d, nil
}

// RestoreDocument rebuilds a document from persisted state.
func RestoreDocument(
	id kernel.UUID,
	title, fileRef string,
	category Category,
	uploaderID, companyID kernel.UUID,
	links Links,
	accessUserID *kernel.UUID,
	createdAt time.Time,
	version int64,
) (*Document, error) {
	d, err := NewDocument(id, title, fileRef, category, uploaderID, companyID, links, createdAt)
	if err != nil {
		return nil, err
	}
	if accessUserID != nil {
		d.accessUserID = kernel.Ptr(*accessUserID)
	}
	d.SetVersion(version)
	return d, nil
}

func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

func (d *Document) ID() kernel.UUID            { return d.id }
func (d *Document) Title() string              { return d.title }
func (d *Document) FileRef() string            { return d.fileRef }
func (d *Document) Category() Category         { return d.category }
func (d *Document) UploaderID() kernel.UUID    { return d.uploaderID }
func (d *Document) CompanyID() kernel.UUID     { return d.companyID }
func (d *Document) Links() Links               { return copyLinks(d.links) }
func (d *Document) AccessUserID() *kernel.UUID { return d.accessUserID }
func (d *Document) CreatedAt() time.Time       { return d.createdAt }

func (d *Document) IsUploader(id kernel.UUID) bool { return d.uploaderID.IsEqual(id) }

// HasGrant reports whether id received an explicit access grant.
func (d *Document) HasGrant(id kernel.UUID) bool { return kernel.EqualPtr(d.accessUserID, id) }

// Update edits title and category.
func (d *Document) Update(title string, category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if err := d.setTitle(title); err != nil {
		return err
	}
	d.category = category
	return nil
}

// GrantAccess gives one user explicit read access. nil revokes it.
func (d *Document) GrantAccess(userID *kernel.UUID) {
	if userID == nil {
		d.accessUserID = nil
		return
	}
	d.accessUserID = kernel.Ptr(*userID)
}

func (d *Document) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("document title")
	}
	d.title = title
	return nil
}

func copyLinks(l Links) Links {
	var out Links
	if l.TaskID != nil {
		out.TaskID = kernel.Ptr(*l.TaskID)
	}
	if l.RouteID != nil {
		out.RouteID = kernel.Ptr(*l.RouteID)
	}
	return out
}
