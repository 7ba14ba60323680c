package depo

// productsQuery is the storefront's product search operation, with the same
// selection set the web shop itself sends.
const productsQuery = `
query products($searchString: String, $order: [ProductSortModelInput], $facets: [FacetFilterInput], $categoryId: Int, $rows: Int, $start: Int) {
  products(
    searchString: $searchString
    categoryId: $categoryId
    order_by: $order
    facets: $facets
    rows: $rows
    start: $start
  ) {
    pageInfo {
      endCursor
      startCursor
      hasPreviousPage
      hasNextPage
      totalCount
      __typename
    }
    edges {
      node {
        id
        name
        thumbnailPictureUrl
        primaryBarcode
        cardThumbnailPictureUrl
        energyEfficiency
        energyEfficiencyDocumentUrl
        energyEfficiencyImageUrl
        unitConversion {
          factor
          fromUnit
          toUnit
          __typename
        }
        stockItems {
          locationId
          locationAddress
          quantity
          __typename
        }
        prices {
          id
          priceType
          yellow {
            priceWithVat
            unit
            __typename
          }
          orange {
            priceWithVat
            unit
            __typename
          }
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}`
