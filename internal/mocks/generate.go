package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Page --dir ../usecase --output usecase --outpkg usecasemock --filename page_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PageOpener --dir ../usecase --output usecase --outpkg usecasemock --filename page_opener_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ResultRepository --dir ../domain/fixture --output domain/fixture --outpkg fixturemock --filename result_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/leaguestanding --output domain/leaguestanding --outpkg leaguestandingmock --filename repository_mock.go
