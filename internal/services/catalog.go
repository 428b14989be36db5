package services

import (
	"github.com/yungbote/catalog-backend/internal/data/aggregates"
	"github.com/yungbote/catalog-backend/internal/data/repos"
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
	"github.com/yungbote/catalog-backend/internal/validation"
)

// Store and update share one rule table per resource.
var (
	CategoryRules = validation.RuleSet{
		"name":        "required,string,max=255",
		"description": "nullable,string",
		"is_active":   "boolean",
	}
	GenreRules = validation.RuleSet{
		"name":          "required,string,max=255",
		"is_active":     "boolean",
		"categories_id": "required,array,exists=categories",
	}
	CastMemberRules = validation.RuleSet{
		"name": "required,string,max=255",
		"type": "required,integer,oneof=1 2",
	}
	VideoRules = validation.RuleSet{
		"title":         "required,string,max=255",
		"description":   "required,string",
		"year_launched": "required,year",
		"opened":        "boolean",
		"rating":        "required,string,oneof=L 10 12 14 16 18",
		"duration":      "required,integer",
		"categories_id": "required,array,exists=categories",
		"genres_id":     "required,array,exists=genres",
	}
)

type (
	CategoryService   = CRUDService[types.Category]
	GenreService      = CRUDService[types.Genre]
	CastMemberService = CRUDService[types.CastMember]
	VideoService      = CRUDService[types.Video]
)

// CatalogDeps is what every catalog service is built from.
type CatalogDeps struct {
	Base        aggregates.BaseDeps
	Categories  repos.CategoryRepo
	Genres      repos.GenreRepo
	CastMembers repos.CastMemberRepo
	Videos      repos.VideoRepo
	Notifier    *CatalogNotifier
}

func (d CatalogDeps) checker() validation.ExistenceChecker {
	return validation.Tables{
		types.Category{}.TableName(): d.Categories,
		types.Genre{}.TableName():    d.Genres,
	}
}

func NewCategoryService(deps CatalogDeps) CategoryService {
	return NewCRUDService[types.Category, *types.Category](ResourceConfig[types.Category]{
		Name:  "category",
		Rules: CategoryRules,
		New:   types.NewCategory,
	}, CRUDDeps[types.Category]{
		Base:     deps.Base,
		Store:    deps.Categories,
		Checker:  deps.checker(),
		Notifier: deps.Notifier,
	})
}

func NewCastMemberService(deps CatalogDeps) CastMemberService {
	return NewCRUDService[types.CastMember, *types.CastMember](ResourceConfig[types.CastMember]{
		Name:  "cast_member",
		Rules: CastMemberRules,
		New:   types.NewCastMember,
	}, CRUDDeps[types.CastMember]{
		Base:     deps.Base,
		Store:    deps.CastMembers,
		Checker:  deps.checker(),
		Notifier: deps.Notifier,
	})
}
